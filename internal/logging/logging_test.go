package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cscgen/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("trace")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_ConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Level = "warn"
	log, closer, err := logging.New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "case", "test0_0")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "case=test0_0")
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cscgen.log")
	cfg := logging.DefaultConfig()
	cfg.Console = false
	cfg.Format = logging.FormatJSON
	cfg.Filename = path

	log, closer, err := logging.New(cfg, nil)
	require.NoError(t, err)
	log.Info("fixture written", "eigenvalue", 5.0)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	require.Equal(t, "fixture written", rec["msg"])
	require.Equal(t, 5.0, rec["eigenvalue"])
}

func TestNew_Errors(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Level = "loud"
	_, _, err := logging.New(cfg, nil)
	require.ErrorIs(t, err, logging.ErrUnknownLevel)

	cfg = logging.DefaultConfig()
	cfg.Format = "xml"
	_, _, err = logging.New(cfg, nil)
	require.Error(t, err)
}
