package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("EVENTBOOKING_PRIMARY__ENV", "production")
	t.Setenv("EVENTBOOKING_SERVER__PORT", "9090")
	t.Setenv("EVENTBOOKING_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EVENTBOOKING_STORE__DRIVER", "postgres")
	t.Setenv("EVENTBOOKING_DATABASE__USER", "booker")
	t.Setenv("EVENTBOOKING_DATABASE__NAME", "bookings")
	t.Setenv("EVENTBOOKING_OBSERVABILITY__LOGGING__LEVEL", "debug")
	t.Setenv("EVENTBOOKING_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")
	t.Setenv("EVENTBOOKING_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "booker", cfg.Database.User)
	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.Observability.IsProduction())
	assert.True(t, cfg.Observability.HealthCheckEnabled("database"))
	assert.False(t, cfg.Observability.HealthCheckEnabled("redis"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "unknown store driver",
			env:  map[string]string{"EVENTBOOKING_STORE__DRIVER": "sqlite"},
			want: "config validation failed",
		},
		{
			name: "postgres without credentials",
			env:  map[string]string{"EVENTBOOKING_STORE__DRIVER": "postgres"},
			want: "database user, name required",
		},
		{
			name: "bad log level",
			env:  map[string]string{"EVENTBOOKING_OBSERVABILITY__LOGGING__LEVEL": "loud"},
			want: "invalid observability config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
