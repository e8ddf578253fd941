package domain

import "github.com/shopspring/decimal"

const (
	PeriodToday   = "today"
	PeriodAllTime = "all"
)

// OrderStatuses are reported even when no order is in them.
var OrderStatuses = []string{"pending", "in_preparation", "ready", "served", "completed", "cancelled"}

type ItemSales struct {
	ItemID       int     `json:"item_id"`
	Name         string  `json:"name"`
	RestaurantID int     `json:"restaurant_id"`
	Quantity     float64 `json:"quantity"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Summary struct {
	MostPopularToday   *ItemSales      `json:"most_popular_today,omitempty"`
	MostPopularAllTime *ItemSales      `json:"most_popular_all_time,omitempty"`
	RevenueToday       decimal.Decimal `json:"revenue_today"`
	OrdersByStatus     map[string]int  `json:"orders_by_status"`
}
