package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gitp.dev/gitp/internal/config"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestSplog(t *testing.T, cfg *config.Config) (*Splog, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	splog, err := NewSplogWithConfig(&out, &errOut, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = splog.Close() })
	return splog, &out, &errOut
}

func TestSplogStreams(t *testing.T) {
	splog, out, errOut := newTestSplog(t, config.Default())

	splog.Info("Current branch: %s", "main")
	splog.Warn("careful")
	splog.Error("Could not determine current git branch")
	splog.Debug("hidden")

	require.Equal(t, "Current branch: main\n⚠️  careful\n", out.String())
	require.Equal(t, "Error: Could not determine current git branch\n", errOut.String())
}

func TestSplogMessageWithoutArgsIsVerbatim(t *testing.T) {
	splog, out, _ := newTestSplog(t, config.Default())

	splog.Info("100% done")

	require.Equal(t, "100% done\n", out.String())
}

func TestSplogDebugMode(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	splog, out, _ := newTestSplog(t, cfg)

	splog.Debug("normalized %q", "git push")

	require.Equal(t, "normalized \"git push\"\n", out.String())
}

func TestSplogFileLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "gitp.log")
	splog, out, _ := newTestSplog(t, cfg)

	splog.Debug("only in the file")
	splog.Info("on both")
	require.NoError(t, splog.Close())

	require.Equal(t, "on both\n", out.String())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	require.Contains(t, string(data), "level=DEBUG")
	require.Contains(t, string(data), "only in the file")
	require.Contains(t, string(data), "on both")
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTerminal(f))
}
