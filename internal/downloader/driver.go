package downloader

import (
	"context"
	"fmt"
	"time"

	errs "imgfetch/pkg/errors"
	"imgfetch/pkg/logger"
)

// DownloadJob is one URL from the list together with where it will be saved
type DownloadJob struct {
	Index    int // 1-based position in the URL list
	URL      string
	FileName string
	Path     string
}

// Outcome is what happened to a single job
type Outcome string

const (
	OutcomeSkipped    Outcome = "skipped"
	OutcomeDownloaded Outcome = "downloaded"
	OutcomeFailed     Outcome = "failed"
)

// DownloadResult represents the result of a download job
type DownloadResult struct {
	Job      DownloadJob
	Outcome  Outcome
	Error    error
	Duration time.Duration
	Size     int64
}

// FileFetcher downloads url to dest and prints its own status line
type FileFetcher interface {
	Fetch(ctx context.Context, url, dest string) (int64, error)
}

// OutputStorage is the directory downloads land in
type OutputStorage interface {
	EnsureDir() error
	Exists(name string) bool
	Path(name string) string
}

// StatusReporter prints the lines the Driver itself is responsible for
type StatusReporter interface {
	AlreadyExists(path string)
	Complete()
}

// Driver walks the URL list once, in order, skipping files already on disk
type Driver struct {
	urls    []string
	fetcher FileFetcher
	storage OutputStorage
	console StatusReporter
	logger  logger.Logger
}

// NewDriver creates a Driver for urls
func NewDriver(
	urls []string,
	fetcher FileFetcher,
	storage OutputStorage,
	console StatusReporter,
	log logger.Logger,
) *Driver {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Driver{
		urls:    urls,
		fetcher: fetcher,
		storage: storage,
		console: console,
		logger:  log,
	}
}

// Run ensures the output directory exists and then processes every URL.
// Only a directory failure is returned as an error, and it happens before
// any request is made. Per-URL failures are reported on the console and
// in the results, and never stop the run.
func (d *Driver) Run(ctx context.Context) ([]DownloadResult, error) {
	log := d.logger.WithContext(ctx)

	if err := d.storage.EnsureDir(); err != nil {
		log.WithError(err).Error("Cannot prepare output directory")
		return nil, err
	}

	log.InfoWithFields("Starting downloads", map[string]interface{}{
		"urls": len(d.urls),
	})

	results := make([]DownloadResult, 0, len(d.urls))
	for i, u := range d.urls {
		results = append(results, d.processJob(ctx, log, d.newJob(i+1, u)))
	}

	d.console.Complete()
	return results, nil
}

func (d *Driver) newJob(index int, url string) DownloadJob {
	name := FileName(url, index)
	return DownloadJob{
		Index:    index,
		URL:      url,
		FileName: name,
		Path:     d.storage.Path(name),
	}
}

// processJob handles a single download job
func (d *Driver) processJob(ctx context.Context, runLog logger.Logger, job DownloadJob) DownloadResult {
	start := time.Now()
	result := DownloadResult{Job: job}

	log := runLog.WithFields(map[string]interface{}{
		"index": job.Index,
		"url":   job.URL,
		"path":  job.Path,
	})

	if d.storage.Exists(job.FileName) {
		log.Debug("File already exists, skipping")
		d.console.AlreadyExists(job.Path)
		result.Outcome = OutcomeSkipped
		result.Duration = time.Since(start)
		return result
	}

	size, err := d.fetcher.Fetch(ctx, job.URL, job.Path)
	result.Size = size
	result.Duration = time.Since(start)

	if err != nil {
		result.Outcome = OutcomeFailed
		result.Error = fmt.Errorf("download %s: %w", job.URL, err)
		log.WithField("kind", string(errs.KindOf(err))).Debug("Job failed")
		return result
	}

	result.Outcome = OutcomeDownloaded
	log.Debug("Job completed")
	return result
}
