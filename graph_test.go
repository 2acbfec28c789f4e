package scriptdeps_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/scriptdeps/scriptdeps"
)

func TestGraphDependenciesOf(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.Add(NewModuleKey("a.js"), []Dependency{dep("b.js", KindRequired)})
	b.Add(NewModuleKey("b.js"), nil)
	g := b.Graph()

	got, err := g.DependenciesOf(NewModuleKey("a.js"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Dependency{dep("b.js", KindRequired)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dependencies differ from expected (-want, +got):\n%s", diff)
	}

	_, err = g.DependenciesOf(NewModuleKey("missing.js"))
	var unknownErr *UnknownModuleError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("got error %v, want an UnknownModuleError", err)
	}
	if got, want := unknownErr.Key, NewModuleKey("missing.js"); got != want {
		t.Errorf("got key %v in error, want %v", got, want)
	}
}

func TestGraphKeysOrder(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.Add(NewModuleKey("z.js"), nil)
	b.Add(NewModuleKey("a.js"), nil)
	b.Add(NewModuleKey("m.js"), nil)
	// Re-registering replaces the dependency list but keeps the original position.
	b.Add(NewModuleKey("z.js"), []Dependency{dep("a.js", KindRequired)})
	g := b.Graph()

	got := slices.Collect(g.Keys())
	want := []ModuleKey{"z.js", "a.js", "m.js"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys differ from expected (-want, +got):\n%s", diff)
	}
	if got, want := g.Len(), 3; got != want {
		t.Errorf("got Len() %v, want %v", got, want)
	}
	zDeps, err := g.DependenciesOf(NewModuleKey("z.js"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Dependency{dep("a.js", KindRequired)}, zDeps); diff != "" {
		t.Errorf("re-registered dependencies differ from expected (-want, +got):\n%s", diff)
	}
}

func TestGraphExternalDependencies(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.Add(NewModuleKey("a.js"), []Dependency{
		dep("ext.js", KindRequired),
		dep("b.js", KindRequired),
	})
	b.Add(NewModuleKey("b.js"), []Dependency{
		dep("ext.js", KindRequired), // duplicate of a.js's declaration
		dep("ext.js", KindUsed),     // same target, different kind: distinct
		dep("other/ext.js", KindUsed),
	})
	g := b.Graph()

	got := slices.Collect(g.ExternalDependencies())
	want := []Dependency{
		dep("ext.js", KindRequired),
		dep("ext.js", KindUsed),
		dep("other/ext.js", KindUsed),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("external dependencies differ from expected (-want, +got):\n%s", diff)
	}
}

func TestGraphImmutableAfterBuild(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.Add(NewModuleKey("a.js"), nil)
	g := b.Graph()
	b.Add(NewModuleKey("late.js"), nil)

	if g.Contains(NewModuleKey("late.js")) {
		t.Error("module added after Graph() leaked into the built graph")
	}
	if got, want := g.Len(), 1; got != want {
		t.Errorf("got Len() %v, want %v", got, want)
	}
}
