package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolConfigFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_MAX_IDLE_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME_SECONDS", "120")

	cfg := PoolConfigFromEnv()
	assert.Equal(t, 40, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 2*time.Minute, cfg.ConnMaxLifetime)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "books")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "sitebooks")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	assert.Equal(t,
		"host=db user=books password=secret dbname=sitebooks port=5433 sslmode=require",
		DSN(),
	)
}
