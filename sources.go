package scriptdeps

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/scriptdeps/scriptdeps/internal/syncmap"
	"golang.org/x/sync/errgroup"
)

// A SourceFile pairs a [ModuleKey] with the module's source text.  It implements [Keyed] so a
// collection of source files can be arranged with [SortByOrder].
type SourceFile struct {
	key  ModuleKey
	code string
}

func NewSourceFile(key ModuleKey, code string) *SourceFile {
	return &SourceFile{key: key, code: code}
}

var _ Keyed = (*SourceFile)(nil)

func (f *SourceFile) Key() ModuleKey {
	return f.key
}

func (f *SourceFile) Code() string {
	return f.code
}

func (f *SourceFile) String() string {
	return f.key.String()
}

type scanConfig struct {
	includes []string
	excludes []string
}

// A ScanOption adjusts the behavior of [ScanDir].
type ScanOption func(*scanConfig)

// WithIncludes restricts [ScanDir] to files whose slash-relative path matches at least one of
// the given [path.Match] patterns.  A pattern without a "/" is also tried against the file's
// base name.  The default is a single "*.js" pattern.
func WithIncludes(patterns ...string) ScanOption {
	return func(cfg *scanConfig) {
		cfg.includes = patterns
	}
}

// WithExcludes skips files whose slash-relative path matches any of the given patterns, even
// if an include pattern matches.  Matching works as in [WithIncludes].
func WithExcludes(patterns ...string) ScanOption {
	return func(cfg *scanConfig) {
		cfg.excludes = patterns
	}
}

func (cfg *scanConfig) match(rel string) bool {
	for _, pat := range cfg.excludes {
		if matchPattern(pat, rel) {
			return false
		}
	}
	for _, pat := range cfg.includes {
		if matchPattern(pat, rel) {
			return true
		}
	}
	return false
}

func matchPattern(pat, rel string) bool {
	if ok, err := path.Match(pat, rel); err == nil && ok {
		return true
	}
	if !strings.Contains(pat, "/") {
		if ok, err := path.Match(pat, path.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

// ScanDir walks the given directory tree and returns a [SourceFile] for every matching file,
// in lexical walk order.  Each file's [ModuleKey] is its slash-separated path relative to dir.
// The files are read concurrently; the walk itself happens up front so the returned slice
// order does not depend on read completion order.
func ScanDir(ctx context.Context, dir string, opts ...ScanOption) ([]*SourceFile, error) {
	cfg := &scanConfig{includes: []string{"*.js"}}
	for _, opt := range opts {
		opt(cfg)
	}
	var rels []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if cfg.match(rel) {
			rels = append(rels, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan source directory %v: %w", dir, err)
	}
	var files syncmap.Map[ModuleKey, *SourceFile]
	gr, ctx := errgroup.WithContext(ctx)
	for _, rel := range rels {
		gr.Go(func() error {
			if err := context.Cause(ctx); err != nil {
				return err
			}
			key := NewModuleKey(rel)
			if err := key.Check(); err != nil {
				return fmt.Errorf("invalid module key %q: %w", rel, err)
			}
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "scanned source file", "key", key, "bytes", len(data))
			files.LoadOrStore(key, NewSourceFile(key, string(data)))
			return nil
		})
	}
	if err := gr.Wait(); err != nil {
		return nil, err
	}
	ret := make([]*SourceFile, 0, len(rels))
	for _, rel := range rels {
		f, ok := files.Load(NewModuleKey(rel))
		if !ok {
			panic(fmt.Errorf("scanned file %v missing from result map", rel))
		}
		ret = append(ret, f)
	}
	return ret, nil
}

// BuildGraph registers every source file in a new [Graph], extracting each file's dependency
// markers along the way.
func BuildGraph(files []*SourceFile) Graph {
	b := NewBuilder()
	for _, f := range files {
		b.AddSource(f.Key(), f.Code())
	}
	return b.Graph()
}
