package main

import (
	"context"
	"os/signal"
	"syscall"

	"qr-dine/config"
	httpapi "qr-dine/notify-svc/internal/api/http"
	"qr-dine/notify-svc/internal/service"
	"qr-dine/notify-svc/internal/storage"
	"qr-dine/staffauth"
)

const consumerGroup = "notify-svc"

func main() {
	config.Load()
	config.InitLogger("notify-svc")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, consumerGroup)
	defer reader.Close()

	realtime := storage.NewRedisStore(rdb)
	consumer := service.NewConsumer(reader, storage.NewPostgresStore(db), realtime)
	go consumer.Start(ctx)

	handler := &httpapi.Handler{
		Feed:      realtime,
		Tokens:    staffauth.NewValidator(config.Getenv("JWT_SECRET", "change-me")),
		Heartbeat: config.GetDuration("SSE_HEARTBEAT", 0),
	}
	httpapi.StartServer(":"+config.Getenv("PORT", "8084"), httpapi.NewRouter(handler))
}
