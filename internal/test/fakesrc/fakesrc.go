// Package fakesrc makes it easy to generate fake annotated script sources, and whole source
// trees of them, to facilitate testing.
package fakesrc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptdeps/scriptdeps"
)

type config struct {
	key      string
	requires []string
	uses     []string
	body     []string
}

// An Option controls the creation of a fake source module.
type Option func(*config)

// Key sets the module's key (its path relative to the source tree root).
func Key(key string) Option {
	return func(cfg *config) {
		cfg.key = key
	}
}

// Require adds a "@require" marker for each of the given targets.
func Require(targets ...string) Option {
	return func(cfg *config) {
		cfg.requires = append(cfg.requires, targets...)
	}
}

// Use adds a "@use" marker for each of the given targets.
func Use(targets ...string) Option {
	return func(cfg *config) {
		cfg.uses = append(cfg.uses, targets...)
	}
}

// Body replaces the module's default one-line body.
func Body(lines ...string) Option {
	return func(cfg *config) {
		cfg.body = lines
	}
}

// New generates one fake module and returns its key and source text.  The source carries a
// leading doc comment holding the dependency markers, so it round-trips through
// [scriptdeps.ExtractDependencies].
func New(opts ...Option) (scriptdeps.ModuleKey, string) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.key == "" {
		panic("fakesrc: module key not set")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "/**\n * Fake module %s.\n", cfg.key)
	if len(cfg.requires)+len(cfg.uses) > 0 {
		b.WriteString(" *\n")
	}
	for _, target := range cfg.requires {
		fmt.Fprintf(&b, " * @require %s\n", target)
	}
	for _, target := range cfg.uses {
		fmt.Fprintf(&b, " * @use %s\n", target)
	}
	b.WriteString(" */\n")
	body := cfg.body
	if body == nil {
		body = []string{fmt.Sprintf("console.log(%q);", cfg.key)}
	}
	for _, line := range body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return scriptdeps.NewModuleKey(cfg.key), b.String()
}

// Dir writes one file per option list into a fresh temporary directory and returns the
// directory path.
func Dir(t *testing.T, optss ...[]Option) string {
	t.Helper()
	dir := t.TempDir()
	for _, opts := range optss {
		key, src := New(opts...)
		p := filepath.Join(dir, filepath.FromSlash(key.String()))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// Graph builds a [scriptdeps.Graph] directly from the given option lists without touching the
// filesystem.
func Graph(optss ...[]Option) scriptdeps.Graph {
	b := scriptdeps.NewBuilder()
	for _, opts := range optss {
		b.AddSource(New(opts...))
	}
	return b.Graph()
}
