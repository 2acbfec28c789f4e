package scriptdeps

import (
	"fmt"
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// A Graph is an immutable mapping from [ModuleKey] to the module's declared dependency list,
// plus derived read-only views.  It performs no ordering itself; pass it to [Resolve] for
// that.  Build one with a [Builder].
type Graph interface {
	// Keys returns every registered module key in first-registration order.  This is also the
	// set of keys the graph locally provides to the outside world (the "@provide" metadata in
	// a bundle; see [WriteBundle]).
	Keys() iter.Seq[ModuleKey]

	// Len returns the number of registered modules.
	Len() int

	// Contains reports whether the given key is registered in this graph.
	Contains(key ModuleKey) bool

	// DependenciesOf returns the given module's declared dependency list, in the order
	// produced by [ExtractDependencies] (required targets first, then used targets).  Returns
	// an [UnknownModuleError] if the key was never registered.
	DependenciesOf(key ModuleKey) ([]Dependency, error)

	// ExternalDependencies returns every declared [Dependency] whose target is not itself a
	// registered module key, deduplicated by (target, kind) and yielded in first-appearance
	// order across all modules' lists.
	ExternalDependencies() iter.Seq[Dependency]
}

// An UnknownModuleError is returned by [Graph.DependenciesOf] when the requested key was never
// registered.  This indicates an integration bug in the caller, not bad input: every key fed
// back into the graph should have come out of it.
type UnknownModuleError struct {
	Key ModuleKey
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("module %v is unknown to this dependency graph", e.Key)
}

// A Builder accumulates module registrations and produces an immutable [Graph].  The zero
// value is not usable; call [NewBuilder].
type Builder struct {
	keys []ModuleKey
	deps map[ModuleKey][]Dependency
}

func NewBuilder() *Builder {
	return &Builder{deps: map[ModuleKey][]Dependency{}}
}

// Add registers one module and its declared dependency list.  Registering the same key again
// replaces its dependency list but keeps its original registration position.  The dependency
// list is not inspected; targets may freely name modules that are never registered (they
// become external dependencies).
func (b *Builder) Add(key ModuleKey, deps []Dependency) {
	if _, ok := b.deps[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.deps[key] = slices.Clone(deps)
}

// AddSource is shorthand for Add(key, [ExtractDependencies](src)).
func (b *Builder) AddSource(key ModuleKey, src string) {
	b.Add(key, ExtractDependencies(src))
}

// Graph returns the accumulated registrations as an immutable [Graph].  The builder may be
// reused afterwards; further Add calls do not affect graphs already returned.
func (b *Builder) Graph() Graph {
	g := &graph{
		keys: slices.Clone(b.keys),
		deps: make(map[ModuleKey][]Dependency, len(b.deps)),
	}
	for k, ds := range b.deps {
		g.deps[k] = slices.Clone(ds)
	}
	return g
}

type graph struct {
	keys []ModuleKey
	deps map[ModuleKey][]Dependency
}

var _ Graph = (*graph)(nil)

func (g *graph) Keys() iter.Seq[ModuleKey] {
	return slices.Values(g.keys)
}

func (g *graph) Len() int {
	return len(g.keys)
}

func (g *graph) Contains(key ModuleKey) bool {
	_, ok := g.deps[key]
	return ok
}

func (g *graph) DependenciesOf(key ModuleKey) ([]Dependency, error) {
	deps, ok := g.deps[key]
	if !ok {
		return nil, &UnknownModuleError{Key: key}
	}
	return deps, nil
}

func (g *graph) ExternalDependencies() iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		seen := mapset.NewThreadUnsafeSet[Dependency]()
		for _, key := range g.keys {
			for _, d := range g.deps[key] {
				if g.Contains(d.Key) || !seen.Add(d) {
					continue
				}
				if !yield(d) {
					return
				}
			}
		}
	}
}
