package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

const campaignColumns = `id, public_id, owner_id, name, objective, status,
    budget_currency, budget_daily_cents, spend_currency, spend_total_cents,
    targeting, creative, start_at, end_at, metadata, performance_score,
    created_at, updated_at`

// likeEscaper quotes LIKE metacharacters so a search term matches literally
// under the default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// CampaignStore implements port.CampaignStore on the ad_campaigns table.
// Targeting, creative and metadata are stored as jsonb.
type CampaignStore struct {
	db Querier
}

// NewCampaignStore returns a store over db, usually a *pgxpool.Pool.
func NewCampaignStore(db Querier) *CampaignStore {
	return &CampaignStore{db: db}
}

func (s *CampaignStore) Create(ctx context.Context, c *domain.Campaign) error {
	targeting, creative, metadata, err := marshalDocuments(c)
	if err != nil {
		return err
	}
	err = s.db.QueryRow(ctx, `
        INSERT INTO ad_campaigns (
            public_id, owner_id, name, objective, status,
            budget_currency, budget_daily_cents, spend_currency, spend_total_cents,
            targeting, creative, start_at, end_at, metadata, performance_score)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`,
		c.PublicID, c.OwnerID, c.Name, c.Objective, string(c.Status),
		c.Budget.Currency, c.Budget.DailyCents, c.Spend.Currency, c.Spend.TotalCents,
		targeting, creative, c.Schedule.StartAt, c.Schedule.EndAt, metadata, c.PerformanceScore,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (s *CampaignStore) Find(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := s.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM ad_campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if err != nil {
		return nil, notFound("find campaign", err)
	}
	return c, nil
}

func (s *CampaignStore) FindByPublicID(ctx context.Context, publicID string) (*domain.Campaign, error) {
	if _, err := uuid.Parse(publicID); err != nil {
		return nil, domain.NotFound("find campaign", "campaign not found")
	}
	row := s.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM ad_campaigns WHERE public_id = $1`, publicID)
	c, err := scanCampaign(row)
	if err != nil {
		return nil, notFound("find campaign", err)
	}
	return c, nil
}

func (s *CampaignStore) List(ctx context.Context, f domain.CampaignFilter) ([]*domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			statuses = append(statuses, string(st))
		}
		where = append(where, "status = ANY("+arg(statuses)+")")
	}
	if f.OwnerID != "" {
		where = append(where, "owner_id = "+arg(f.OwnerID))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		where = append(where, "name ILIKE "+arg("%"+likeEscaper.Replace(search)+"%"))
	}

	query := `SELECT ` + campaignColumns + ` FROM ad_campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	if f.OrderByScore {
		query += ` ORDER BY performance_score DESC, created_at DESC, id DESC`
	} else {
		query += ` ORDER BY created_at DESC, id DESC`
	}
	if f.Limit > 0 {
		query += ` LIMIT ` + arg(f.Limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return list, nil
}

// Update writes the non-nil fields of patch in one statement.
func (s *CampaignStore) Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.Empty() {
		return s.Find(ctx, id)
	}
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	setJSON := func(col string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", col, err)
		}
		set(col, raw)
		return nil
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Objective != nil {
		set("objective", *patch.Objective)
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.Budget != nil {
		set("budget_currency", patch.Budget.Currency)
		set("budget_daily_cents", patch.Budget.DailyCents)
	}
	if patch.Spend != nil {
		set("spend_currency", patch.Spend.Currency)
		set("spend_total_cents", patch.Spend.TotalCents)
	}
	if patch.Schedule != nil {
		set("start_at", patch.Schedule.StartAt)
		set("end_at", patch.Schedule.EndAt)
	}
	if patch.PerformanceScore != nil {
		set("performance_score", *patch.PerformanceScore)
	}
	if patch.Targeting != nil {
		if err := setJSON("targeting", patch.Targeting); err != nil {
			return nil, err
		}
	}
	if patch.Creative != nil {
		if err := setJSON("creative", patch.Creative); err != nil {
			return nil, err
		}
	}
	if patch.Metadata != nil {
		if err := setJSON("metadata", patch.Metadata); err != nil {
			return nil, err
		}
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE ad_campaigns SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), campaignColumns)
	c, err := scanCampaign(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound("update campaign", err)
	}
	return c, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                             domain.Campaign
		status                        string
		targeting, creative, metadata []byte
		startAt, endAt                *time.Time
	)
	err := row.Scan(
		&c.ID, &c.PublicID, &c.OwnerID, &c.Name, &c.Objective, &status,
		&c.Budget.Currency, &c.Budget.DailyCents, &c.Spend.Currency, &c.Spend.TotalCents,
		&targeting, &creative, &startAt, &endAt, &metadata, &c.PerformanceScore,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	c.Schedule = domain.Schedule{StartAt: utcPtr(startAt), EndAt: utcPtr(endAt)}
	if err = unmarshalDoc(targeting, &c.Targeting); err != nil {
		return nil, fmt.Errorf("decode targeting of campaign %d: %w", c.ID, err)
	}
	if err = unmarshalDoc(creative, &c.Creative); err != nil {
		return nil, fmt.Errorf("decode creative of campaign %d: %w", c.ID, err)
	}
	if err = unmarshalDoc(metadata, &c.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata of campaign %d: %w", c.ID, err)
	}
	return &c, nil
}

func marshalDocuments(c *domain.Campaign) (targeting, creative, metadata []byte, err error) {
	if targeting, err = json.Marshal(c.Targeting); err != nil {
		return nil, nil, nil, fmt.Errorf("encode targeting: %w", err)
	}
	if creative, err = json.Marshal(c.Creative); err != nil {
		return nil, nil, nil, fmt.Errorf("encode creative: %w", err)
	}
	if metadata, err = json.Marshal(c.Metadata); err != nil {
		return nil, nil, nil, fmt.Errorf("encode metadata: %w", err)
	}
	return targeting, creative, metadata, nil
}

func unmarshalDoc(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

var _ port.CampaignStore = (*CampaignStore)(nil)
