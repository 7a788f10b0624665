package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/backmassage/mediareport/internal/term"
)

// DefaultCacheSize is the number of directory summaries a Scanner keeps per
// scan when no [WithCacheSize] option is given.
const DefaultCacheSize = 1024

// Logger is the minimal logging interface the scanner needs.
type Logger interface {
	Debug(string, ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Scanner walks library roots on a filesystem and counts companion files.
// A Scanner holds no per-scan state and may run several scans concurrently.
type Scanner struct {
	fs        billy.Filesystem
	palette   term.Palette
	cacheSize int
	log       Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithCacheSize bounds the per-scan directory summary cache. Values below 1
// are ignored.
func WithCacheSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithLogger sets the logger that receives per-scan debug lines.
func WithLogger(l Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScanner returns a Scanner reading from fsys. pal colors the status of
// each result.
func NewScanner(fsys billy.Filesystem, pal term.Palette, opts ...Option) *Scanner {
	s := &Scanner{
		fs:        fsys,
		palette:   pal,
		cacheSize: DefaultCacheSize,
		log:       nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// dirSummary is what a folder contributes to the media files inside it.
type dirSummary struct {
	names       map[string]bool // Every entry name, as listed.
	hasSubtitle bool
	hasCover    bool
}

// Scan walks root recursively and returns its coverage counts. Any walk or
// listing error aborts this scan only. Cancelling ctx stops the walk.
func (s *Scanner) Scan(ctx context.Context, root string) (ScanResult, error) {
	media, err := s.discover(ctx, root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("scan %s: %w", root, err)
	}

	result := ScanResult{Root: root, Total: len(media)}
	if result.Empty() {
		s.log.Debug("%s: no media files", root)
		return result, nil
	}

	cache, err := lru.New[string, dirSummary](s.cacheSize)
	if err != nil {
		return ScanResult{}, fmt.Errorf("scan %s: %w", root, err)
	}

	var infoCount, subCount, imageCount, folders int
	for _, path := range media {
		if err := ctx.Err(); err != nil {
			return ScanResult{}, fmt.Errorf("scan %s: %w", root, err)
		}
		dir := filepath.Dir(path)
		sum, ok := cache.Get(dir)
		if !ok {
			sum, err = s.summarize(dir)
			if err != nil {
				return ScanResult{}, fmt.Errorf("scan %s: %w", root, err)
			}
			cache.Add(dir, sum)
			folders++
		}

		if sum.names[infoName(filepath.Base(path))] {
			infoCount++
		}
		if sum.hasSubtitle {
			subCount++
		}
		if sum.hasCover {
			imageCount++
		}
	}

	result.Info = newCoverage(infoCount, result.Total)
	result.Subtitles = newCoverage(subCount, result.Total)
	result.Images = newCoverage(imageCount, result.Total)
	result.Status = StatusFor(result.Average(), s.palette)

	s.log.Debug("%s: %d media files, %d folder listings", root, result.Total, folders)
	return result, nil
}

// discover returns every non-directory entry under root classified as
// media, in walk (lexical) order.
func (s *Scanner) discover(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if Classify(path) == KindMedia {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// summarize lists dir once and records which companions it offers.
func (s *Scanner) summarize(dir string) (dirSummary, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return dirSummary{}, fmt.Errorf("list %s: %w", dir, err)
	}
	sum := dirSummary{names: make(map[string]bool, len(entries))}
	for _, e := range entries {
		sum.names[e.Name()] = true
		if e.IsDir() {
			continue
		}
		if Classify(e.Name()) == KindSubtitle {
			sum.hasSubtitle = true
		}
		if IsCoverName(e.Name()) {
			sum.hasCover = true
		}
	}
	return sum, nil
}
