package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imgfetch/pkg/config"
)

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zlog := zerolog.New(buf).Level(zerolog.DebugLevel)
	return &zerologLogger{logger: &zlog, fields: make(map[string]interface{})}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{"info level", &config.LoggingConfig{Level: "info"}, false},
		{"debug level", &config.LoggingConfig{Level: "debug"}, false},
		{"disabled", &config.LoggingConfig{Level: "disabled"}, false},
		{"invalid level", &config.LoggingConfig{Level: "invalid"}, true},
		{"with file", &config.LoggingConfig{Level: "info", File: filepath.Join(t.TempDir(), "logs", "imgfetch.log")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg, config.ColorNever)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNewWritesToStderrAndFile(t *testing.T) {
	var console bytes.Buffer
	prev := stderr
	stderr = &console
	defer func() { stderr = prev }()

	logFile := filepath.Join(t.TempDir(), "imgfetch.log")
	l, err := New(&config.LoggingConfig{Level: "info", File: logFile}, config.ColorNever)
	require.NoError(t, err)

	l.Debug("hidden below level")
	l.WithField("path", "images/32.jpg").Info("saved")

	assert.Contains(t, console.String(), "saved")
	assert.NotContains(t, console.String(), "hidden below level")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"saved"`)
	assert.Contains(t, string(data), `"path":"images/32.jpg"`)
	assert.Contains(t, string(data), `"app":"imgfetch"`)
}

func TestConsoleColorFollowsMode(t *testing.T) {
	tests := []struct {
		mode      string
		wantColor bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		// a buffer is not a terminal
		{config.ColorAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var console bytes.Buffer
			prev := stderr
			stderr = &console
			defer func() { stderr = prev }()

			l, err := New(&config.LoggingConfig{Level: "info"}, tt.mode)
			require.NoError(t, err)
			l.WithField("path", "images/a.jpg").Warn("slow")

			out := console.String()
			assert.Contains(t, out, "WARN")
			assert.Contains(t, out, "path")
			assert.Equal(t, tt.wantColor, strings.Contains(out, "\033["), out)
		})
	}
}

type ctxKey struct{}

// ctxHook records the context attached to each event
type ctxHook struct {
	seen []context.Context
}

func (h *ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	h.seen = append(h.seen, e.GetCtx())
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	hook := &ctxHook{}
	zlog := zerolog.New(&buf).Hook(hook)
	parent := &zerologLogger{logger: &zlog, fields: map[string]interface{}{"run_id": "r1"}}

	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	parent.WithContext(ctx).Info("with context")

	require.Len(t, hook.seen, 1)
	assert.Equal(t, "v", hook.seen[0].Value(ctxKey{}))
	assert.Contains(t, buf.String(), `"run_id":"r1"`, "fields survive WithContext")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	for _, tc := range []struct {
		name string
		log  func(string)
	}{
		{"debug", l.Debug},
		{"info", l.Info},
		{"warn", l.Warn},
		{"error", l.Error},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.log(tc.name + " message")
			assert.Contains(t, buf.String(), tc.name+" message")
			assert.Contains(t, buf.String(), `"level":"`+tc.name+`"`)
		})
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newBufferLogger(&buf)

	child := parent.WithField("run_id", "abc").WithFields(map[string]interface{}{
		"count": 2,
		"ok":    true,
	})
	child.Info("child message")

	out := buf.String()
	assert.Contains(t, out, `"run_id":"abc"`)
	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, `"ok":true`)

	buf.Reset()
	parent.Info("parent message")
	assert.NotContains(t, buf.String(), "run_id")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	assert.Same(t, l, l.WithError(nil))

	l.WithError(errors.New("disk full")).Error("write failed")
	assert.Contains(t, buf.String(), `"error":"disk full"`)
}

func TestFieldTypes(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.InfoWithFields("types", map[string]interface{}{
		"str":      "v",
		"int64":    int64(8192),
		"dur":      1500 * time.Millisecond,
		"strs":     []string{"a", "b"},
		"err":      errors.New("bad"),
		"fallback": struct{ A int }{A: 1},
	})

	out := buf.String()
	assert.Contains(t, out, `"str":"v"`)
	assert.Contains(t, out, `"int64":8192`)
	assert.Contains(t, out, `"dur":1500`)
	assert.Contains(t, out, `"strs":["a","b"]`)
	assert.Contains(t, out, `"err":"bad"`)
	assert.Contains(t, out, `"fallback":{"A":1}`)
}

func TestDownloadFields(t *testing.T) {
	fields := DownloadFields("https://example.com/a.jpg", "images/a.jpg", 8192, time.Second)

	assert.Equal(t, "https://example.com/a.jpg", fields["url"])
	assert.Equal(t, "images/a.jpg", fields["path"])
	assert.Equal(t, int64(8192), fields["bytes"])
	assert.Equal(t, "8.2 kB", fields["size"])
	assert.Equal(t, time.Second, fields["duration"])
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 27)
	assert.NotEqual(t, a, b)
}

func TestTestLogger(t *testing.T) {
	l := NewTestLogger()

	l.WithField("url", "u1").WithError(errors.New("boom")).ErrorWithFields("failed", map[string]interface{}{"kind": "network"})
	l.Info("done")

	msgs := l.GetMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "ERROR", msgs[0].Level)
	assert.Equal(t, "u1", msgs[0].Fields["url"])
	assert.Equal(t, "network", msgs[0].Fields["kind"])
	assert.EqualError(t, msgs[0].Error, "boom")
	assert.True(t, l.HasError())
	assert.True(t, l.HasMessage("done"))
	assert.False(t, strings.Contains(msgs[1].Message, "failed"))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.WithField("a", 1).WithError(errors.New("x")).Error("ignored")
		l.GetZerolog().Info().Msg("ignored")
	})
}
