package scriptdeps

import (
	"log/slog"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/scriptdeps/scriptdeps/internal/itertools"
)

// A CycleError is returned by [Resolve] when a chain of required dependencies loops back onto
// a module that is still being included.  Key is the module that closed the loop, and Chain is
// the full inclusion path ending in a repeat of Key, suitable for diagnostics.
//
// Only cycles composed entirely of required edges are detected.  A cycle that closes through a
// used edge is not an error; the deferred processing of used targets either finds the target
// already included or includes it on a fresh inclusion path.
type CycleError struct {
	Key   ModuleKey
	Chain []ModuleKey
}

func (e *CycleError) Error() string {
	chain := slices.Collect(itertools.Stringify(slices.Values(e.Chain)))
	return "circular dependency detected: " + strings.Join(chain, " > ")
}

// Resolve computes the load order for the given [Graph]: a sequence containing every
// registered module key exactly once, such that every module's transitively required modules
// appear strictly before it.  Used (soft) dependencies only guarantee inclusion, not relative
// position.  Dependency targets not registered in the graph are skipped entirely; they never
// appear in the returned order (see [Graph.ExternalDependencies]).
//
// The walk seeds from [Graph.Keys] and flushes deferred used targets in mark order, so the
// result is deterministic for a given graph.  On a required-edge cycle Resolve returns a nil
// order and a [*CycleError]; the resolution is not partial.
func Resolve(g Graph) ([]ModuleKey, error) {
	r := &resolver{
		g:        g,
		order:    make([]ModuleKey, 0, g.Len()),
		included: mapset.NewThreadUnsafeSetWithSize[ModuleKey](g.Len()),
		pending:  mapset.NewThreadUnsafeSet[ModuleKey](),
	}
	for key := range g.Keys() {
		if r.included.Contains(key) {
			continue
		}
		if err := r.include(key); err != nil {
			return nil, err
		}
		if err := r.flushPending(); err != nil {
			return nil, err
		}
	}
	slog.Debug("resolved module order", "modules", g.Len(), "order", len(r.order))
	return r.order, nil
}

// resolver holds the state of a single [Resolve] call and is discarded afterwards.
type resolver struct {
	g Graph

	// order is the finalized sequence; included mirrors it as a set.
	order    []ModuleKey
	included mapset.Set[ModuleKey]

	// pending holds keys reached only through used edges so far.  pendingOrder preserves mark
	// order so that flushes are deterministic.
	pending      mapset.Set[ModuleKey]
	pendingOrder []ModuleKey

	// active is the stack of keys currently being included through required-edge recursion.
	// It exists solely to detect required cycles.
	active []ModuleKey
}

// include appends key and its not-yet-included transitive required dependencies to the order,
// required dependencies first.
func (r *resolver) include(key ModuleKey) error {
	if r.included.Contains(key) {
		return nil
	}
	if slices.Contains(r.active, key) {
		return &CycleError{Key: key, Chain: append(slices.Clone(r.active), key)}
	}
	r.active = append(r.active, key)
	deps, err := r.g.DependenciesOf(key)
	if err != nil {
		return err
	}
	for _, d := range deps {
		if d.Kind != KindRequired || !r.g.Contains(d.Key) {
			continue
		}
		if err := r.include(d.Key); err != nil {
			return err
		}
	}
	for _, d := range deps {
		if d.Kind != KindUsed || !r.g.Contains(d.Key) {
			continue
		}
		r.markPending(d.Key)
	}
	r.order = append(r.order, key)
	r.included.Add(key)
	r.active = r.active[:len(r.active)-1]
	return nil
}

// markPending defers the used target for a later [resolver.flushPending] pass.  Targets that
// are already included (or already marked) are left alone; pending never contains an included
// key.
func (r *resolver) markPending(key ModuleKey) {
	if r.included.Contains(key) || !r.pending.Add(key) {
		return
	}
	r.pendingOrder = append(r.pendingOrder, key)
}

// flushPending includes deferred used targets until none remain.  Each flushed key is included
// on an empty active stack, so cycle detection restarts fresh for it, and its own used targets
// may re-populate pending for the next round.  Termination: a key can only be marked pending
// while not yet included, and every round either includes keys (permanently) or finds pending
// empty.
func (r *resolver) flushPending() error {
	for len(r.pendingOrder) > 0 {
		snapshot := r.pendingOrder
		r.pendingOrder = nil
		r.pending.Clear()
		for _, key := range snapshot {
			if err := r.include(key); err != nil {
				return err
			}
		}
	}
	return nil
}
