package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// TestValidate checks required fields, format validations and defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	require.Error(t, Validate(new(Config)))

	// Bad socket.
	require.Error(t, Validate(&Config{ServerAddress: "bad:address"}))

	// Unknown log level.
	require.Error(t, Validate(&Config{
		ServerAddress: "127.0.0.1:0",
		LogLevel:      "loud",
	}))

	// Defaults are filled in.
	cfg := &Config{ServerAddress: "127.0.0.1:0"}
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, alarm.MaxMessageBytes, cfg.MaxMessageBytes)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		ServerAddress:   "127.0.0.1:50051",
		Timeout:         3 * time.Second,
		LogLevel:        "debug",
		MaxMessageBytes: 64,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.Timeout, loaded.Timeout)
	require.Equal(t, cfg.LogLevel, loaded.LogLevel)
	require.Equal(t, cfg.MaxMessageBytes, loaded.MaxMessageBytes)
}
