package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"qr-dine/analytics-svc/internal/domain"
	"qr-dine/config"
)

const MaxRevenueDays = 90

var ErrInvalidRange = errors.New("invalid range")

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// TopItems ranks menu items by quantity sold, today or all time. Counters kept
// in Redis by notify-svc are used when present, otherwise the orders table is
// aggregated directly. Ranked items no longer on the menu are skipped and the
// ranking is read further until limit items are found.
func (s *AnalyticsService) TopItems(ctx context.Context, restaurantID int, period string, limit int) ([]domain.ItemSales, error) {
	if limit <= 0 {
		limit = 10
	}
	key := config.AllTimeItemsKey(restaurantID)
	if period == domain.PeriodToday {
		key = config.DailyItemsKey(s.today(), restaurantID)
	}

	items := make([]domain.ItemSales, 0, limit)
	page := int64(limit)
	for start := int64(0); len(items) < limit; start += page {
		ranked, err := s.rdb.ZRevRangeWithScores(ctx, key, start, start+page-1).Result()
		if err != nil {
			if start > 0 {
				return nil, fmt.Errorf("read ranking %s: %w", key, err)
			}
			log.Warn().Err(err).Str("key", key).Msg("redis ranking unavailable, using database")
		}
		if start == 0 && (err != nil || len(ranked) == 0) {
			return s.topItemsFromDB(ctx, restaurantID, period, limit)
		}
		if len(ranked) == 0 {
			break
		}

		found, err := s.onMenu(ctx, restaurantID, ranked, limit-len(items))
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
		if int64(len(ranked)) < page {
			break
		}
	}
	return items, nil
}

// onMenu turns ranking entries into ItemSales, dropping items that have been
// deleted from the menu, and returns at most want of them.
func (s *AnalyticsService) onMenu(ctx context.Context, restaurantID int, ranked []redis.Z, want int) ([]domain.ItemSales, error) {
	ids := make([]int64, 0, len(ranked))
	for _, z := range ranked {
		id, _ := strconv.ParseInt(z.Member.(string), 10, 64)
		ids = append(ids, id)
	}
	names, err := s.itemNames(ctx, restaurantID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemSales, 0, want)
	for i, z := range ranked {
		if len(items) == want {
			break
		}
		name, ok := names[int(ids[i])]
		if !ok {
			continue
		}
		items = append(items, domain.ItemSales{
			ItemID:       int(ids[i]),
			Name:         name,
			RestaurantID: restaurantID,
			Quantity:     z.Score,
		})
	}
	return items, nil
}

func (s *AnalyticsService) today() string {
	return config.Day(s.now())
}

func (s *AnalyticsService) itemNames(ctx context.Context, restaurantID int, ids []int64) (map[int]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM menu_items WHERE restaurant_id = $1 AND id = ANY($2)`,
		restaurantID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load item names: %w", err)
	}
	defer rows.Close()

	names := make(map[int]string, len(ids))
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func (s *AnalyticsService) topItemsFromDB(ctx context.Context, restaurantID int, period string, limit int) ([]domain.ItemSales, error) {
	query := `
		SELECT (li->>'item_id')::int AS item_id, MAX(li->>'name') AS name,
			SUM((li->>'quantity')::int) AS quantity
		FROM orders o, jsonb_array_elements(o.line_items) AS li
		WHERE o.restaurant_id = $1 AND o.status <> 'cancelled'`
	if period == domain.PeriodToday {
		query += ` AND (o.created_at AT TIME ZONE 'UTC')::date = (NOW() AT TIME ZONE 'UTC')::date`
	}
	query += `
		GROUP BY 1
		ORDER BY quantity DESC, item_id
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate item sales: %w", err)
	}
	defer rows.Close()

	items := []domain.ItemSales{}
	for rows.Next() {
		item := domain.ItemSales{RestaurantID: restaurantID}
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Revenue returns the grand total sold per day for the last days days,
// oldest first, with zero for days without sales.
func (s *AnalyticsService) Revenue(ctx context.Context, restaurantID, days int) ([]domain.DailyRevenue, error) {
	if days <= 0 || days > MaxRevenueDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidRange, MaxRevenueDays)
	}

	totals, err := s.rdb.HGetAll(ctx, config.RevenueKey(restaurantID)).Result()
	if err != nil {
		log.Warn().Err(err).Int("restaurant_id", restaurantID).Msg("redis revenue unavailable, using database")
	}
	if err != nil || len(totals) == 0 {
		totals, err = s.revenueFromDB(ctx, restaurantID, days)
		if err != nil {
			return nil, err
		}
	}

	today := s.now().UTC()
	out := make([]domain.DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := config.Day(today.AddDate(0, 0, -i))
		revenue := decimal.Zero
		if raw, ok := totals[day]; ok {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				log.Warn().Str("day", day).Str("value", raw).Msg("unreadable revenue counter")
			} else {
				revenue = parsed.Round(2)
			}
		}
		out = append(out, domain.DailyRevenue{Date: day, Revenue: revenue})
	}
	return out, nil
}

func (s *AnalyticsService) revenueFromDB(ctx context.Context, restaurantID, days int) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			SUM(ROUND(total * (100 + COALESCE(cgst_rate, 0) + COALESCE(sgst_rate, 0)) / 100, 2))
		FROM orders
		WHERE restaurant_id = $1 AND status <> 'cancelled'
			AND (created_at AT TIME ZONE 'UTC')::date >= (NOW() AT TIME ZONE 'UTC')::date - ($2::int - 1)
		GROUP BY 1
	`, restaurantID, days)
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer rows.Close()

	totals := map[string]string{}
	for rows.Next() {
		var day, total string
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		totals[day] = total
	}
	return totals, rows.Err()
}

func (s *AnalyticsService) OrdersByStatus(ctx context.Context, restaurantID int) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		WHERE restaurant_id = $1
		GROUP BY status
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(domain.OrderStatuses))
	for _, status := range domain.OrderStatuses {
		counts[status] = 0
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// Summary is the owner dashboard header: best sellers, today's revenue and
// the order pipeline.
func (s *AnalyticsService) Summary(ctx context.Context, restaurantID int) (*domain.Summary, error) {
	summary := &domain.Summary{}

	today, err := s.TopItems(ctx, restaurantID, domain.PeriodToday, 1)
	if err != nil {
		return nil, err
	}
	if len(today) > 0 {
		summary.MostPopularToday = &today[0]
	}

	allTime, err := s.TopItems(ctx, restaurantID, domain.PeriodAllTime, 1)
	if err != nil {
		return nil, err
	}
	if len(allTime) > 0 {
		summary.MostPopularAllTime = &allTime[0]
	}

	revenue, err := s.Revenue(ctx, restaurantID, 1)
	if err != nil {
		return nil, err
	}
	summary.RevenueToday = revenue[0].Revenue

	summary.OrdersByStatus, err = s.OrdersByStatus(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
