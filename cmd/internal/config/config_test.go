package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "2M", cfg.BodyLimit)
	assert.Equal(t, int64(1), cfg.NodeID)
	assert.Equal(t, 10*time.Hour, cfg.CNPJCacheTTL)
	assert.Equal(t, time.Hour, cfg.CNPJCacheSweep)
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("S3_BUCKET_NAME", "contratos-bucket")
	t.Setenv("CNPJ_CACHE_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "contratos-bucket", cfg.S3Bucket)
	assert.Equal(t, 30*time.Minute, cfg.CNPJCacheTTL)
	assert.Equal(t, log.DEBUG, cfg.Level())
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("SNOWFLAKE_NODE_ID", "one")
	_, err := Parse()
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]log.Lvl{
		"":        log.INFO,
		"WARNING": log.WARN,
		"error":   log.ERROR,
		"off":     log.OFF,
	} {
		assert.Equal(t, want, (&Config{LogLevel: in}).Level(), in)
	}
}
