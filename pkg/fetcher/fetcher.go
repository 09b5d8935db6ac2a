package fetcher

import (
	"context"
	"io"
	"time"

	errs "imgfetch/pkg/errors"
	"imgfetch/pkg/logger"
	"imgfetch/pkg/storage"
	"imgfetch/pkg/ui"
)

// Streamer is the transport a Fetcher downloads through
type Streamer interface {
	Fetch(ctx context.Context, url string, w io.Writer) (int64, error)
}

// Fetcher downloads a single URL to a path and reports the outcome on the
// console
type Fetcher struct {
	client  Streamer
	console *ui.Console
	logger  logger.Logger
}

// New creates a Fetcher
func New(client Streamer, console *ui.Console, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Fetcher{client: client, console: console, logger: log}
}

// Fetch downloads url to dest, whose parent directory must exist. A nil
// error means dest now holds the complete body; on any error nothing is
// left at dest by this call. Either way one console line is printed.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) (int64, error) {
	start := time.Now()

	size, err := f.save(ctx, url, dest)
	if err != nil {
		f.logger.WithError(err).ErrorWithFields("download failed", map[string]interface{}{
			"url":    url,
			"path":   dest,
			"kind":   string(errs.KindOf(err)),
			"status": errs.StatusCode(err),
		})
		f.console.DownloadError(url, err)
		return size, err
	}

	f.logger.InfoWithFields("download completed", logger.DownloadFields(url, dest, size, time.Since(start)))
	f.console.Downloaded(dest)
	return size, nil
}

func (f *Fetcher) save(ctx context.Context, url, dest string) (int64, error) {
	out, err := storage.CreatePending(dest)
	if err != nil {
		return 0, errs.IO("failed to open destination", err)
	}

	size, err := f.client.Fetch(ctx, url, out)
	if err != nil {
		if abortErr := out.Abort(); abortErr != nil {
			f.logger.WithError(abortErr).WarnWithFields("failed to remove partial file", map[string]interface{}{
				"path": dest,
			})
		}
		return size, err
	}

	if err := out.Commit(); err != nil {
		return size, errs.IO("failed to save file", err)
	}
	return size, nil
}
