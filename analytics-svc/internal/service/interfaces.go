package service

import (
	"context"

	"qr-dine/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopItems(ctx context.Context, restaurantID int, period string, limit int) ([]domain.ItemSales, error)
	Revenue(ctx context.Context, restaurantID, days int) ([]domain.DailyRevenue, error)
	OrdersByStatus(ctx context.Context, restaurantID int) (map[string]int, error)
	Summary(ctx context.Context, restaurantID int) (*domain.Summary, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
