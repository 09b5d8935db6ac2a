package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"imgfetch/internal/downloader"
	"imgfetch/pkg/catalog"
	"imgfetch/pkg/config"
	"imgfetch/pkg/fetcher"
	"imgfetch/pkg/logger"
	"imgfetch/pkg/storage"
	"imgfetch/pkg/ui"
)

func runFetch(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load(configFile, commandLineFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging, cfg.Console.Color); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := logger.NewRunID()
	log := logger.ForRun(runID)
	log.WithField("version", version).Info("imgfetch starting")

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := newDriver(cfg, os.Stdout, catalog.ImageURLs(), catalog.OutputDir, log)
	results, err := d.Run(ctx)
	if err != nil {
		return err
	}

	log.InfoWithFields("imgfetch finished", summarize(results))
	return nil
}

// newDriver wires the HTTP client, console and output directory together
func newDriver(cfg *config.Config, out io.Writer, urls []string, dir string, log logger.Logger) *downloader.Driver {
	console := ui.NewConsole(out, cfg.Console.Color)
	client := fetcher.NewClient(cfg.HTTP, log)
	f := fetcher.New(client, console, log)

	return downloader.NewDriver(urls, f, storage.NewManager(dir), console, log)
}

func summarize(results []downloader.DownloadResult) map[string]interface{} {
	counts := map[string]interface{}{
		"total":      len(results),
		"downloaded": 0,
		"skipped":    0,
		"failed":     0,
	}
	var bytes int64
	for _, r := range results {
		key := string(r.Outcome)
		counts[key] = counts[key].(int) + 1
		bytes += r.Size
	}
	counts["bytes"] = bytes
	return counts
}
