package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.TickInterval())
	assert.True(t, cfg.Bindings.Watch)
}

func TestLoadExplicitOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
[input]
tick_rate = 30
repeat_gap = "80ms"

[bindings]
file = "/etc/robofactory/bindings.yaml"
watch = false

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Input.TickRate)
	assert.Equal(t, 80*time.Millisecond, cfg.Input.RepeatGap)
	assert.Equal(t, 600*time.Millisecond, cfg.Input.InitialDelay, "unset keys keep defaults")
	assert.Equal(t, "/etc/robofactory/bindings.yaml", cfg.Bindings.File)
	assert.False(t, cfg.Bindings.Watch)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Second/30, cfg.TickInterval())
}

func TestLoadLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robofactory.toml"), []byte("[input]\ntick_rate = 120\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Input.TickRate)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
[input]
tick_rate = 0

[log]
level = "loud"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "tick_rate")
	assert.Contains(t, err.Error(), "loud")
}

func TestLoadMalformedFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(writeConfig(t, "[input\n"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	assert.Equal(t, filepath.Join(home, "bindings.toml"), expandPath("~/bindings.toml"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}
