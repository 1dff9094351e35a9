package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "git", cfg.GitBinary)
	require.Equal(t, "origin", cfg.Remote)
	require.Equal(t, [2]string{"git", "push"}, cfg.PushVerb)
	require.False(t, cfg.Debug)
	require.Empty(t, cfg.Log.File)
	require.Equal(t, 1, cfg.Log.MaxSize)
	require.Equal(t, 2, cfg.Log.MaxBackups)
	require.Equal(t, 30, cfg.Log.MaxAge)
}

func TestPushVerbIsFixed(t *testing.T) {
	cfg := Default()
	cfg.PushVerb[1] = "pull"

	require.Equal(t, [2]string{"git", "push"}, PushVerb())
	require.Equal(t, [2]string{"git", "push"}, Default().PushVerb)
}

func TestLoad(t *testing.T) {
	t.Run("reads diagnostics overrides", func(t *testing.T) {
		t.Setenv("GITP_DEBUG", "1")
		t.Setenv("GITP_LOG_FILE", "/tmp/gitp.log")
		t.Setenv("GITP_LOG_MAX_SIZE", "5")
		t.Setenv("GITP_LOG_MAX_BACKUPS", "0")
		t.Setenv("GITP_LOG_MAX_AGE", "7")

		cfg := Load()
		require.True(t, cfg.Debug)
		require.Equal(t, "/tmp/gitp.log", cfg.Log.File)
		require.Equal(t, 5, cfg.Log.MaxSize)
		require.Equal(t, 0, cfg.Log.MaxBackups)
		require.Equal(t, 7, cfg.Log.MaxAge)
	})

	t.Run("ignores invalid numbers", func(t *testing.T) {
		t.Setenv("GITP_DEBUG", "")
		t.Setenv("GITP_LOG_FILE", "")
		t.Setenv("GITP_LOG_MAX_SIZE", "big")
		t.Setenv("GITP_LOG_MAX_BACKUPS", "-3")
		t.Setenv("GITP_LOG_MAX_AGE", "0")

		cfg := Load()
		require.Equal(t, Default(), cfg)
	})

	t.Run("never changes the command defaults", func(t *testing.T) {
		t.Setenv("GITP_DEBUG", "yes")

		cfg := Load()
		require.Equal(t, "git", cfg.GitBinary)
		require.Equal(t, "origin", cfg.Remote)
	})
}
