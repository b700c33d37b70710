package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// FileCandidate is one file offered to the searcher: path, metadata,
// and contents when content loading was requested.
type FileCandidate struct {
	Path    string // absolute
	RelPath string // relative to the walk root, slash-separated
	Size    int64
	ModTime time.Time
	Content string // populated only when Config.LoadContent is set
}

// SecurityCheck decides whether a path may be visited at all. Returning
// false or an error skips the candidate.
type SecurityCheck func(ctx context.Context, path string) (bool, error)

// Config controls a single walk.
type Config struct {
	ExcludeDirs []string // directory names pruned in addition to the defaults
	FileTypes   []string // extensions without the leading dot; empty allows all
	MaxFileSize int64    // skip files larger than this; zero means no limit
	LoadContent bool     // read file contents through the worker pool
	Security    SecurityCheck
}

// defaultExcludes are directory names pruned on every walk.
var defaultExcludes = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// Walker streams file candidates from a directory tree.
type Walker struct {
	workers int
}

// New creates a walker with one content reader per CPU.
func New() *Walker {
	return &Walker{workers: runtime.NumCPU()}
}

// Walk traverses root and invokes fn once per surviving candidate, from
// a single goroutine. Hidden directories, default exclusions, and
// configured exclusions are pruned; files are filtered by extension and
// size before fn sees them. An error from fn aborts the walk.
func (w *Walker) Walk(ctx context.Context, root string, cfg Config, fn func(FileCandidate) error) error {
	if !cfg.LoadContent {
		return w.walkDir(ctx, root, cfg, fn)
	}
	return w.walkWithContent(ctx, root, cfg, fn)
}

// walkWithContent runs the traversal and a pool of content readers,
// delivering loaded candidates to fn from the calling goroutine.
func (w *Walker) walkWithContent(ctx context.Context, root string, cfg Config, fn func(FileCandidate) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	candidates := make(chan FileCandidate, w.workers)
	loaded := make(chan FileCandidate, w.workers)

	g, gctx := errgroup.WithContext(ctx)

	// Producer: stream filtered candidates off the tree.
	g.Go(func() error {
		defer close(candidates)
		return w.walkDir(gctx, root, cfg, func(c FileCandidate) error {
			select {
			case candidates <- c:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	// Readers: load contents concurrently, bounded by the pool size.
	g.Go(func() error {
		defer close(loaded)
		readers, rctx := errgroup.WithContext(gctx)
		readers.SetLimit(w.workers)
		for c := range candidates {
			readers.Go(func() error {
				data, err := os.ReadFile(c.Path)
				if err != nil {
					// Unreadable files are skipped, not fatal.
					return nil
				}
				c.Content = string(data)
				select {
				case loaded <- c:
					return nil
				case <-rctx.Done():
					return rctx.Err()
				}
			})
		}
		return readers.Wait()
	})

	finish := make(chan error, 1)
	go func() { finish <- g.Wait() }()

	for c := range loaded {
		if err := fn(c); err != nil {
			cancel()
			for range loaded {
				// Drain so the readers can exit.
			}
			<-finish
			return err
		}
	}

	return <-finish
}

// walkDir performs the filtered traversal, invoking fn synchronously.
func (w *Walker) walkDir(ctx context.Context, root string, cfg Config, fn func(FileCandidate) error) error {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, dir := range cfg.ExcludeDirs {
		excluded[dir] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || defaultExcludes[name] || excluded[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !matchesFileType(path, cfg.FileTypes) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
			return nil
		}

		if cfg.Security != nil {
			ok, err := cfg.Security(ctx, path)
			if err != nil || !ok {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		return fn(FileCandidate{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	})
}

// matchesFileType reports whether path carries one of the allowed
// extensions. An empty list allows everything.
func matchesFileType(path string, fileTypes []string) bool {
	if len(fileTypes) == 0 {
		return true
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, ft := range fileTypes {
		if strings.EqualFold(ext, ft) {
			return true
		}
	}
	return false
}
