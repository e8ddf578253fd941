package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ORDER_SVC_URL", "http://order-svc:8081")
	t.Setenv("NOTIFY_SVC_URL", "")

	cfg := loadConfig()

	assert.Equal(t, "http://order-svc:8081", cfg.OrderSvcURL)
	assert.Equal(t, "http://localhost:8084", cfg.NotifySvcURL)
	assert.Equal(t, "http://localhost:8083", cfg.AnalyticsSvcURL)
}
