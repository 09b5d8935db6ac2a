package logger

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// NewRunID returns a sortable identifier for one imgfetch run
func NewRunID() string {
	return ksuid.New().String()
}

// ForRun returns the global logger tagged with runID
func ForRun(runID string) Logger {
	return GetLogger().WithField("run_id", runID)
}

// DownloadFields builds the structured fields logged for a finished download
func DownloadFields(url, path string, size int64, duration time.Duration) map[string]interface{} {
	fields := map[string]interface{}{
		"url":      url,
		"path":     path,
		"bytes":    size,
		"duration": duration,
	}
	if size >= 0 {
		fields["size"] = humanize.Bytes(uint64(size))
	}
	return fields
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}
