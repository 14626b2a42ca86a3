package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

// CampaignStore keeps campaigns in process memory. Values are copied on
// the way in and out so callers never share state with the store.
type CampaignStore struct {
	mu     sync.RWMutex
	clock  port.Clock
	nextID int64
	byID   map[int64]*domain.Campaign
	public map[string]int64
}

// NewCampaignStore creates an empty store.
func NewCampaignStore(clock port.Clock) *CampaignStore {
	if clock == nil {
		clock = port.SystemClock
	}
	return &CampaignStore{
		clock:  clock,
		byID:   make(map[int64]*domain.Campaign),
		public: make(map[string]int64),
	}
}

func (s *CampaignStore) Create(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.clock.Now()
	c.ID = s.nextID
	c.CreatedAt = now
	c.UpdatedAt = now
	s.byID[c.ID] = cloneCampaign(c)
	s.public[c.PublicID] = c.ID
	return nil
}

func (s *CampaignStore) Find(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, domain.NotFound("find campaign", "campaign not found")
	}
	return cloneCampaign(c), nil
}

func (s *CampaignStore) FindByPublicID(ctx context.Context, publicID string) (*domain.Campaign, error) {
	s.mu.RLock()
	id, ok := s.public[publicID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NotFound("find campaign", "campaign not found")
	}
	return s.Find(ctx, id)
}

func (s *CampaignStore) List(_ context.Context, f domain.CampaignFilter) ([]*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*domain.Campaign, 0, len(s.byID))
	for _, c := range s.byID {
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Status) {
			continue
		}
		if f.OwnerID != "" && c.OwnerID != f.OwnerID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	slices.SortFunc(out, func(a, b *domain.Campaign) int {
		if f.OrderByScore && a.PerformanceScore != b.PerformanceScore {
			return b.PerformanceScore - a.PerformanceScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return int(b.ID - a.ID)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *CampaignStore) Update(_ context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, domain.NotFound("update campaign", "campaign not found")
	}
	next := cloneCampaign(c)
	patch.Apply(next)
	if patch.Metadata != nil {
		next.Metadata = patch.Metadata.Clone()
	}
	next.UpdatedAt = s.clock.Now()
	s.byID[id] = next
	return cloneCampaign(next), nil
}

func cloneCampaign(c *domain.Campaign) *domain.Campaign {
	cp := *c
	cp.Targeting = domain.Targeting{
		Keywords:  slices.Clone(c.Targeting.Keywords),
		Audiences: slices.Clone(c.Targeting.Audiences),
		Locations: slices.Clone(c.Targeting.Locations),
		Languages: slices.Clone(c.Targeting.Languages),
	}
	if c.Schedule.StartAt != nil {
		t := *c.Schedule.StartAt
		cp.Schedule.StartAt = &t
	}
	if c.Schedule.EndAt != nil {
		t := *c.Schedule.EndAt
		cp.Schedule.EndAt = &t
	}
	cp.Metadata = c.Metadata.Clone()
	return &cp
}

var _ port.CampaignStore = (*CampaignStore)(nil)
