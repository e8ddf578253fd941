package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-dine/notify-svc/internal/domain"
	"qr-dine/notify-svc/internal/storage"
)

func TestPostgresStore_LoadOrder(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	lines := `[{"item_id":3,"name":"Paneer Tikka","quantity":2,"unit_price":"150","line_total":"300","add_ons":[]}]`
	sqlMock.ExpectQuery("FROM orders o").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_id", "customer_name", "line_items",
			"grand_total", "status", "source", "payment_status", "created_at", "updated_at"}).
			AddRow(42, 10, 5, "Asha", []byte(lines), "315.00", "pending", "online", "pending", created, created))

	store := storage.NewPostgresStore(db)
	order, err := store.LoadOrder(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 10, order.RestaurantID)
	require.NotNil(t, order.TableID)
	assert.Equal(t, 5, *order.TableID)
	assert.Equal(t, "315", order.GrandTotal.String())
	assert.Equal(t, "pending", order.PaymentStatus)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresStore_LoadOrderNotFound(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectQuery("FROM orders o").WithArgs(7).WillReturnError(sql.ErrNoRows)

	_, err = storage.NewPostgresStore(db).LoadOrder(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func newRedisStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewRedisStore(rdb), mr, rdb
}

func TestRedisStore_MarkProcessed(t *testing.T) {
	store, _, _ := newRedisStore(t)
	ctx := context.Background()

	first, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, again)

	require.NoError(t, store.Forget(ctx, "evt-1"))
	afterForget, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, afterForget)
}

func TestRedisStore_SalesCounters(t *testing.T) {
	store, mr, _ := newRedisStore(t)
	ctx := context.Background()
	order := *placedOrder("pending")
	order.Lines = append(order.Lines, domain.SnapshotLine{ItemID: 8, Name: "Lassi", Quantity: 1, LineTotal: decimal.NewFromInt(60)})

	counted, err := store.RecordSale(ctx, order)
	require.NoError(t, err)
	assert.True(t, counted)

	countedAgain, err := store.RecordSale(ctx, order)
	require.NoError(t, err)
	assert.False(t, countedAgain)

	score, err := mr.ZScore("analytics:items:daily:2026-10-16:10", "3")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	score, err = mr.ZScore("analytics:items:alltime:10", "8")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, "315", mr.HGet("analytics:revenue:10", "2026-10-16"))

	reversed, err := store.ReverseSale(ctx, order)
	require.NoError(t, err)
	assert.True(t, reversed)

	_, err = mr.ZScore("analytics:items:alltime:10", "3")
	assert.Error(t, err, "reversed items leave the ranking")
	assert.Equal(t, "0", mr.HGet("analytics:revenue:10", "2026-10-16"))

	reversedAgain, err := store.ReverseSale(ctx, order)
	require.NoError(t, err)
	assert.False(t, reversedAgain)
}

func TestRedisStore_SalesCountedOnUTCDay(t *testing.T) {
	store, mr, _ := newRedisStore(t)
	order := *placedOrder("pending")
	// 01:00 in India is still the previous day in UTC
	order.CreatedAt = time.Date(2026, 10, 17, 1, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	_, err := store.RecordSale(context.Background(), order)
	require.NoError(t, err)

	score, err := mr.ZScore("analytics:items:daily:2026-10-16:10", "3")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	assert.Equal(t, "315", mr.HGet("analytics:revenue:10", "2026-10-16"))
	assert.Empty(t, mr.HGet("analytics:revenue:10", "2026-10-17"))
}

func TestRedisStore_PublishReachesSubscriber(t *testing.T) {
	store, _, _ := newRedisStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := store.Subscribe(ctx, 10)
	require.NoError(t, err)
	defer sub.Close()

	update := domain.DashboardUpdate{Event: domain.EventOrderPlaced, Order: *placedOrder("pending")}
	require.NoError(t, store.Publish(ctx, 10, update))

	select {
	case payload := <-sub.Messages:
		var got domain.DashboardUpdate
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, 42, got.Order.ID)
		assert.Equal(t, domain.EventOrderPlaced, got.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}
}
