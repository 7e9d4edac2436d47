package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/farmacia-api/pkg/config"
)

func TestDBConfig_DSNCodificaCaracteresEspeciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/123",
		DBName:   "farmacia",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/123", "la contraseña debe ir URL-encoded")
}

func TestDBConfig_ConnectionStringPrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/farmacia?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	cfg := config.HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
