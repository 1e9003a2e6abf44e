package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("AUTH_COOKIE_SECURE", true)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Auth.CookieSecure)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ProduccionSinSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "gestion", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/gestion?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestFromViper_PoolSettings(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.True(t, cfg.DB.ForceIPv4)

	v := viper.New()
	v.Set("DB_MIN_CONNS", "0")
	v.Set("DB_MAX_CONN_LIFETIME", "15m")
	v.Set("DB_MAX_CONN_IDLE_TIME", "no-es-duracion")
	v.Set("DB_FORCE_IPV4", false)
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DB.MinConns)
	assert.Equal(t, 15*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnIdleTime, "un valor inválido usa el de por defecto")
	assert.False(t, cfg.DB.ForceIPv4)
}
