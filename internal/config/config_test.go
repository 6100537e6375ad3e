package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageEngineMemory, cfg.Storage.Engine)
	assert.Equal(t, "9:00 AM", cfg.Booking.OpenTime)
	assert.Equal(t, "6:00 PM", cfg.Booking.CloseTime)
	assert.Equal(t, 30, cfg.Booking.SlotDurationMinutes)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[storage]
engine = "postgres"

[database]
host = "db.local"
port = 5433
user = "salon"
password = "secret"
dbname = "salonservice"

[booking]
open_time = "10:00 AM"
close_time = "8:00 PM"
slot_duration_minutes = 15

[auth]
admin_token = "t0ken"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StorageEnginePostgres, cfg.Storage.Engine)
	assert.Equal(t, "t0ken", cfg.Auth.AdminToken)
	assert.Equal(t,
		"host=db.local port=5433 user=salon password=secret dbname=salonservice sslmode=disable",
		cfg.Database.DSN())

	hours, err := cfg.BusinessHours()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00 AM"), hours.OpenTime)
	assert.Equal(t, types.TimeString("8:00 PM"), hours.CloseTime)
	assert.Equal(t, 15, hours.SlotDurationMinutes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrLoadConfig)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown engine", content: "[storage]\nengine = \"redis\"\n"},
		{name: "bad open time", content: "[booking]\nopen_time = \"25:00\"\n"},
		{name: "zero slot step", content: "[booking]\nslot_duration_minutes = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
