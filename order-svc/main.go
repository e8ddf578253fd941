package main

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"qr-dine/config"
	httpapi "qr-dine/order-svc/internal/api/http"
	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/service"
	"qr-dine/order-svc/internal/storage"
)

type settings struct {
	SessionTTL     time.Duration
	SubmitLockTTL  time.Duration
	IdempotencyTTL time.Duration
	TokenTTL       time.Duration
	JWTSecret      string
	PublicBaseURL  string
	UploadDir      string
}

func loadSettings() settings {
	return settings{
		SessionTTL:     config.GetDuration("SESSION_TTL", 4*time.Hour),
		SubmitLockTTL:  config.GetDuration("SUBMIT_LOCK_TTL", 30*time.Second),
		IdempotencyTTL: config.GetDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		TokenTTL:       config.GetDuration("TOKEN_TTL", 12*time.Hour),
		JWTSecret:      config.Getenv("JWT_SECRET", "change-me"),
		PublicBaseURL:  config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:      config.Getenv("UPLOAD_DIR", "./uploads"),
	}
}

func buildHandler(db *sql.DB, rdb *redis.Client, writer *kafka.Writer, cfg settings) *httpapi.Handler {
	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, cfg.SessionTTL, cfg.SubmitLockTTL, cfg.IdempotencyTTL)
	events := storage.NewKafkaPublisher(writer)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}

	orders := service.NewOrderService(repo, repo, repo, repo, repo, cache, events)

	return &httpapi.Handler{
		Restaurants: service.NewRestaurantService(repo, qr),
		Menu:        service.NewMenuService(repo),
		Tables:      service.NewTableService(repo, repo, qr),
		Sessions:    service.NewSessionService(repo, repo, repo, cache, orders),
		Orders:      orders,
		Payments:    service.NewPaymentService(repo, events),
		Bills:       service.NewBillService(repo, repo, repo, events),
		Staff:       service.NewStaffService(repo, tokens),
		Tokens:      tokens,
		UploadDir:   cfg.UploadDir,
	}
}

func main() {
	config.Load()
	config.InitLogger("order-svc")

	db := config.MustInitPostgres()
	defer db.Close()
	if err := storage.NewPostgresRepository(db).EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare schema")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	handler := buildHandler(db, rdb, writer, loadSettings())
	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), httpapi.NewRouter(handler))
}
