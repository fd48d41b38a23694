package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigFrom(t *testing.T) {
	cfg, err := poolConfigFrom(Config{
		URL:             "postgres://app:secret@db:5432/property_listing?sslmode=disable",
		ApplicationName: "property-api",
		MaxConns:        7,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(7), cfg.MaxConns)
	assert.Equal(t, "property-api", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, defaultConnectTimeout, cfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, "property_listing", cfg.ConnConfig.Database)
}

func TestPoolConfigFromKeepsURLSettings(t *testing.T) {
	cfg, err := poolConfigFrom(Config{
		URL:             "postgres://app@db/property_listing?application_name=reporting&connect_timeout=3",
		ApplicationName: "property-api",
		ConnectTimeout:  time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "reporting", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, time.Second, cfg.ConnConfig.ConnectTimeout)
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = NewClient(context.Background(), Config{URL: "postgres://%zz"})
	assert.Error(t, err)
}
