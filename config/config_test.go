package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_DRIVER", "SQLITE_PATH", "BUSINESS_PHONE", "LANG_CODE", "ADMIN_ID", "AUTO_MIGRATE", "DB_PORT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "catering.db", cfg.Store.SQLitePath)
	assert.False(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "972500000000", cfg.Business.Phone)
	assert.Equal(t, "he", cfg.Business.Lang)
	assert.Equal(t, int64(0), cfg.Telegram.AdminID)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("ADMIN_ID", "4242")
	t.Setenv("BUSINESS_CHAT_ID", "-100123")
	t.Setenv("AUTO_MIGRATE", "TRUE")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("LANG_CODE", "en")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, int64(4242), cfg.Telegram.AdminID)
	assert.Equal(t, int64(-100123), cfg.Telegram.BusinessChatID)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "en", cfg.Business.Lang)
}
