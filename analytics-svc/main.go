package main

import (
	httpapi "qr-dine/analytics-svc/internal/api/http"
	"qr-dine/analytics-svc/internal/service"
	"qr-dine/config"
	"qr-dine/staffauth"
)

func main() {
	config.Load()
	config.InitLogger("analytics-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewAnalyticsService(db, rdb)
	handler := httpapi.NewHandler(svc, staffauth.NewValidator(config.Getenv("JWT_SECRET", "change-me")))
	httpapi.StartServer(":"+config.Getenv("PORT", "8083"), httpapi.NewRouter(handler))
}
