package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"qr-dine/api-gateway/internal/gateway"
	"qr-dine/config"
)

func loadConfig() gateway.Config {
	return gateway.Config{
		OrderSvcURL:     config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: config.Getenv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		NotifySvcURL:    config.Getenv("NOTIFY_SVC_URL", "http://localhost:8084"),
		FrontendDir:     config.Getenv("FRONTEND_DIR", ""),
	}
}

func main() {
	config.Load()
	config.InitLogger("api-gateway")

	gw := gateway.NewGateway(loadConfig(), &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.Getenv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("api gateway starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("api gateway stopped")
	}
}
