package pipeline

import (
	"context"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/mediareport/internal/config"
	"github.com/backmassage/mediareport/internal/display"
	"github.com/backmassage/mediareport/internal/library"
	"github.com/backmassage/mediareport/internal/logging"
	"github.com/backmassage/mediareport/internal/term"
)

// Scanner scans one validated library root.
type Scanner interface {
	Scan(ctx context.Context, root string) (library.ScanResult, error)
}

// outcome is one finished scan, successful or not.
type outcome struct {
	root   string
	result library.ScanResult
	err    error
}

// Run prints the banner, validates cfg.Paths, and scans every valid library
// on the local filesystem. Scan errors are reported per library and never
// stop sibling scans.
func Run(ctx context.Context, cfg *config.Config, pal term.Palette, log *logging.Logger) RunStats {
	scanner := library.NewScanner(osfs.New("/"), pal,
		library.WithCacheSize(cfg.CacheSize),
		library.WithLogger(log),
	)
	return run(ctx, cfg, scanner, pal, log)
}

func run(ctx context.Context, cfg *config.Config, scanner Scanner, pal term.Palette, log *logging.Logger) RunStats {
	stats := RunStats{Requested: len(cfg.Paths)}

	log.Print(display.Banner(pal))

	valid := validatePaths(cfg.Paths, log)
	stats.Valid = len(valid)
	stats.Invalid = stats.Requested - stats.Valid
	if len(valid) == 0 {
		log.Warn("No valid paths to scan. Exiting.")
		return stats
	}

	workers := cfg.PoolSize(len(valid))
	log.Debug("Scanning %d libraries with %d workers", len(valid), workers)

	// Buffered so workers never wait on rendering.
	results := make(chan outcome, len(valid))
	go func() {
		var g errgroup.Group
		g.SetLimit(workers)
		for _, root := range valid {
			g.Go(func() error {
				res, err := scanner.Scan(ctx, root)
				results <- outcome{root: root, result: res, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(results)
	}()

	for o := range results {
		var b strings.Builder
		if o.err != nil {
			stats.Failed++
			display.RenderFailure(&b, o.root, o.err, pal)
		} else {
			stats.Scanned++
			stats.MediaFiles += o.result.Total
			display.RenderReport(&b, o.result, pal)
		}
		log.Print(b.String())
	}

	log.Debug("Done: %d scanned, %d failed, %d skipped, %d media files",
		stats.Scanned, stats.Failed, stats.Invalid, stats.MediaFiles)
	return stats
}

// validatePaths returns the resolved form of every valid path, in input
// order. Each rejected path gets its specific error and a skip notice.
func validatePaths(paths []string, log *logging.Logger) []string {
	valid := make([]string, 0, len(paths))
	for _, raw := range paths {
		resolved, err := library.ValidatePath(raw)
		if err != nil {
			log.Error("%v", err)
			log.Warn("Skipping invalid path: %s", raw)
			continue
		}
		valid = append(valid, resolved)
	}
	return valid
}
