package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		level  string
		emit   func(*slog.Logger)
		want   []string
	}{
		{
			format: "json",
			level:  "info",
			emit:   func(l *slog.Logger) { l.Info("sync completed", slog.Int("quotes", 12)) },
			want:   []string{`"msg":"sync completed"`, `"quotes":12`, `"service_name":"quoted"`, `"service_version":"1.4.0"`},
		},
		{
			format: "text",
			level:  "debug",
			emit:   func(l *slog.Logger) { l.Debug("rotation picked", slog.Int64("id", 7)) },
			want:   []string{"msg=\"rotation picked\"", "id=7", "service_name=quoted"},
		},
		{
			format: "pretty",
			level:  "info",
			emit:   func(l *slog.Logger) { l.Info("serving today", slog.String("date", "2024-05-10")) },
			want:   []string{"serving today", "2024-05-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{Level: tt.level, Format: tt.format, Service: "quoted", Version: "1.4.0"}, &buf)
			tt.emit(logger)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "warn", Format: "json"}, &buf)
	logger.Info("feed reachable")
	logger.Warn("feed slow")

	assert.NotContains(t, buf.String(), "feed reachable")
	assert.Contains(t, buf.String(), "feed slow")
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
	logger.Log(context.Background(), LevelTrace, "raw row", slog.Any("cells", []string{"Know thyself.", "Socrates"}))

	assert.Contains(t, buf.String(), "raw row")
	assert.Contains(t, buf.String(), "Socrates")
}

func TestNewWithWriter_RollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quoted.log")

	var console bytes.Buffer
	cfg := &Config{
		Level:   "info",
		Format:  "pretty",
		Service: "quoted",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			MaxSizeMB:  1,
			MaxBackups: 2,
			MaxAgeDays: 7,
		},
	}

	NewWithWriter(cfg, &console).Info("defaults loaded", slog.Int("quotes", 3), slog.String("token", "tok-1"))

	assert.Contains(t, console.String(), "defaults loaded")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"defaults loaded"`)
	assert.Contains(t, string(content), `"service_name":"quoted"`)
	assert.NotContains(t, string(content), "tok-1")
	assert.NotContains(t, console.String(), "tok-1")
}

func TestNewWithWriter_PrettyRedacts(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "debug", Format: "pretty", Service: "quoted"}, &buf).
		With(slog.String("password", "hunter2"))
	logger.WithGroup("feed").Debug("configured", slog.String("api_key", "AIza-1"), slog.String("sheet", "visible"))

	output := buf.String()
	assert.Contains(t, output, "configured")
	assert.Contains(t, output, "visible")
	assert.NotContains(t, output, "hunter2")
	assert.NotContains(t, output, "AIza-1")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "input %q", input)
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := map[slog.Level]log.Level{
		slog.Level(-12):  log.DebugLevel,
		LevelTrace:      log.DebugLevel,
		slog.LevelDebug: log.DebugLevel,
		slog.LevelInfo:  log.InfoLevel,
		slog.LevelWarn:  log.WarnLevel,
		slog.LevelError: log.ErrorLevel,
		slog.Level(12):  log.ErrorLevel,
	}

	for input, want := range tests {
		assert.Equal(t, want, slogToCharmLevel(input), "level %v", input)
	}
}
