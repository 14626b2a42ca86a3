package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
)

const metricColumns = `campaign_id, date, impressions, clicks, conversions,
    spend_cents, revenue_cents, metadata, updated_at`

// MetricStore implements port.MetricStore on ad_campaign_daily_metrics.
type MetricStore struct {
	db Querier
}

func NewMetricStore(db Querier) *MetricStore {
	return &MetricStore{db: db}
}

// UpsertDaily replaces the counters of the day and merges the metadata
// object into the stored one.
func (s *MetricStore) UpsertDaily(ctx context.Context, campaignID int64, date time.Time, v domain.MetricValues) (*domain.DailyMetric, error) {
	meta := v.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode metric metadata: %w", err)
	}
	row := s.db.QueryRow(ctx, `
        INSERT INTO ad_campaign_daily_metrics (
            campaign_id, date, impressions, clicks, conversions, spend_cents, revenue_cents, metadata)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (campaign_id, date) DO UPDATE SET
            impressions   = EXCLUDED.impressions,
            clicks        = EXCLUDED.clicks,
            conversions   = EXCLUDED.conversions,
            spend_cents   = EXCLUDED.spend_cents,
            revenue_cents = EXCLUDED.revenue_cents,
            metadata      = ad_campaign_daily_metrics.metadata || EXCLUDED.metadata,
            updated_at    = now()
        RETURNING `+metricColumns,
		campaignID, domain.UTCDay(date), v.Impressions, v.Clicks, v.Conversions, v.SpendCents, v.RevenueCents, rawMeta)
	m, err := scanMetric(row)
	if err != nil {
		return nil, fmt.Errorf("upsert daily metrics: %w", err)
	}
	return &m, nil
}

func (s *MetricStore) ListByCampaign(ctx context.Context, campaignID int64, windowDays int, asOf time.Time) ([]domain.DailyMetric, error) {
	r := domain.TrailingRange(asOf, windowDays)
	rows, err := s.db.Query(ctx, `
        SELECT `+metricColumns+`
        FROM ad_campaign_daily_metrics
        WHERE campaign_id = $1 AND date BETWEEN $2 AND $3
        ORDER BY date ASC`,
		campaignID, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("list daily metrics: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyMetric, error) {
		return scanMetric(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list daily metrics: %w", err)
	}
	return out, nil
}

func (s *MetricStore) SummariseByCampaignIDs(ctx context.Context, ids []int64, r domain.DateRange) (map[int64]domain.MetricTotals, error) {
	out := make(map[int64]domain.MetricTotals, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := s.db.Query(ctx, `
        SELECT campaign_id,
               COALESCE(SUM(impressions), 0)::bigint,
               COALESCE(SUM(clicks), 0)::bigint,
               COALESCE(SUM(conversions), 0)::bigint,
               COALESCE(SUM(spend_cents), 0)::bigint,
               COALESCE(SUM(revenue_cents), 0)::bigint
        FROM ad_campaign_daily_metrics
        WHERE campaign_id = ANY($1)
          AND ($2::date IS NULL OR date >= $2::date)
          AND ($3::date IS NULL OR date <= $3::date)
        GROUP BY campaign_id`,
		ids, dateArg(r.From), dateArg(r.To))
	if err != nil {
		return nil, fmt.Errorf("summarise metrics: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id int64
			t  domain.MetricTotals
		)
		if err = rows.Scan(&id, &t.Impressions, &t.Clicks, &t.Conversions, &t.SpendCents, &t.RevenueCents); err != nil {
			return nil, fmt.Errorf("summarise metrics: %w", err)
		}
		out[id] = t
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("summarise metrics: %w", err)
	}
	return out, nil
}

func (s *MetricStore) SummariseWindow(ctx context.Context, campaignID int64, windowDays int, asOf time.Time) (domain.MetricTotals, error) {
	sums, err := s.SummariseByCampaignIDs(ctx, []int64{campaignID}, domain.TrailingRange(asOf, windowDays))
	if err != nil {
		return domain.MetricTotals{}, err
	}
	return sums[campaignID], nil
}

func scanMetric(row pgx.Row) (domain.DailyMetric, error) {
	var (
		m    domain.DailyMetric
		meta []byte
	)
	err := row.Scan(&m.CampaignID, &m.Date, &m.Impressions, &m.Clicks, &m.Conversions,
		&m.SpendCents, &m.RevenueCents, &meta, &m.UpdatedAt)
	if err != nil {
		return m, err
	}
	m.Date = domain.UTCDay(m.Date)
	if len(meta) > 0 && string(meta) != "{}" {
		if err = json.Unmarshal(meta, &m.Metadata); err != nil {
			return m, fmt.Errorf("decode metric metadata: %w", err)
		}
	}
	return m, nil
}

var _ port.MetricStore = (*MetricStore)(nil)
