package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestInit_LevelAndSource(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, &buf)

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)
	Warnf("warned")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "logger_test.go")
}

func TestInitWriter_TagFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.DisabledTags = []string{"Noisy"}
	InitWriter(cfg, &buf)

	DebugTagf("noisy", "dropped")
	DebugTagf("engine", "kept tagged")
	Debugf("kept untagged")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept tagged")
	assert.Contains(t, out, "tag=engine")
	assert.Contains(t, out, "kept untagged")

	buf.Reset()
	cfg.DisabledTags = nil
	cfg.EnabledTags = []string{"engine"}
	InitWriter(cfg, &buf)

	InfoTagf("engine", "engine only")
	Infof("no tag")
	WarnTagf("config", "other tag")

	out = buf.String()
	assert.Contains(t, out, "engine only")
	assert.NotContains(t, out, "no tag")
	assert.NotContains(t, out, "other tag")
}

func TestInitWriter_PackageAndFileFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.DisabledPackages = []string{"logger"}
	InitWriter(cfg, &buf)
	Infof("from the logger package")
	assert.Empty(t, buf.String())

	cfg = NewConfig()
	cfg.EnabledFiles = []string{"other.go"}
	InitWriter(cfg, &buf)
	Infof("from logger_test.go")
	assert.Empty(t, buf.String())

	cfg.EnabledFiles = []string{"LOGGER_TEST.GO"}
	InitWriter(cfg, &buf)
	Infof("allowed file")
	assert.Contains(t, buf.String(), "allowed file")
}

func TestInitWithConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacer.log")
	cfg := NewConfig()
	cfg.LogFilePath = path

	closer, err := InitWithConfig(cfg)
	require.NoError(t, err)
	Errorf("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	_, err = InitWithConfig(Config{LogFilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)

	Init(slog.LevelInfo, nil)
}
