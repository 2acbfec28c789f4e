package scriptdeps

import (
	"fmt"
	"io"
	"regexp"
	"slices"

	"github.com/scriptdeps/scriptdeps/internal/itertools"
)

const bundleRule = "// ==========================================================================="

// Marker and @fileoverview lines are stripped from bundled code: the bundle restates the
// graph's combined metadata in its trailer, and stale per-file markers would otherwise be
// re-extracted if the bundle is fed back through [ExtractDependencies].
var (
	markerLine      = regexp.MustCompile(`(?m)^\s*\*\s*[@%](?:require|use)\s+[A-Za-z0-9/\-.]+[ \t]*\r?\n?`)
	fileoverviewTag = regexp.MustCompile(`(?m)^\s*\*\s*@fileoverview`)
)

// WriteBundle concatenates the given source files into one bundle, in the load order computed
// by [Resolve] on the given graph.  Files not covered by the resolved order (keys absent from
// the graph) are placed last, in their input order.  Each file is preceded by a banner naming
// its module key, dependency markers are stripped from the emitted code, and a trailing
// comment block records the bundle's combined metadata: one "@require"/"@use" line per
// external dependency and one "@provide" line per module key the bundle supplies.
func WriteBundle(w io.Writer, g Graph, files []*SourceFile) error {
	order, err := Resolve(g)
	if err != nil {
		return err
	}
	for _, f := range SortByOrder(files, order) {
		code := markerLine.ReplaceAllString(f.Code(), "")
		code = fileoverviewTag.ReplaceAllString(code, "")
		if _, err := fmt.Fprintf(w, "%s\n// %v\n%s\n\n%s\n\n", bundleRule, f.Key(), bundleRule, code); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
	}
	meta := slices.Collect(itertools.Cat(
		itertools.Stringify(g.ExternalDependencies()),
		itertools.Map(g.Keys(), func(key ModuleKey) string { return "@provide " + key.String() }),
	))
	if len(meta) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "\n/*\n"); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	for _, line := range meta {
		if _, err := fmt.Fprintf(w, " * %s\n", line); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
	}
	if _, err := fmt.Fprint(w, " */\n"); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

// WriteAnnotated writes a single source file followed by a comment block restating its
// declared dependencies.  This is the per-file counterpart of the [WriteBundle] trailer, for
// callers that emit files individually instead of bundling them.
func WriteAnnotated(w io.Writer, f *SourceFile) error {
	if _, err := fmt.Fprint(w, f.Code()); err != nil {
		return fmt.Errorf("failed to write %v: %w", f.Key(), err)
	}
	deps := ExtractDependencies(f.Code())
	if len(deps) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "\n/*\n"); err != nil {
		return fmt.Errorf("failed to write %v: %w", f.Key(), err)
	}
	for _, d := range deps {
		if _, err := fmt.Fprintf(w, " * %v\n", d); err != nil {
			return fmt.Errorf("failed to write %v: %w", f.Key(), err)
		}
	}
	if _, err := fmt.Fprint(w, " */\n"); err != nil {
		return fmt.Errorf("failed to write %v: %w", f.Key(), err)
	}
	return nil
}
