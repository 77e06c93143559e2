package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_LOCK_WAIT_TIMEOUT", "3s")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, 3*time.Second, cfg.Database.LockWaitTimeout)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "drims_events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 3, cfg.Batch.SequenceRetries)
	assert.Equal(t, "drims_stock_audit", cfg.RabbitMQ.AuditQueue)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "drims", cfg.Redis.Namespace)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.False(t, cfg.RabbitMQ.ConsumerEnabled)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 3307, Name: "drims"}}
	assert.Equal(t, "u:p@tcp(db:3307)/drims?parseTime=true&loc=Local&charset=utf8mb4", cfg.GetDSN())
}
