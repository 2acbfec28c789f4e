package scriptdeps

import (
	"fmt"
)

// A Kind classifies a [Dependency] edge.
type Kind int

const (
	// KindRequired is a hard dependency: the target must be ordered strictly before the
	// declaring module.  Cycles of required edges are an error; see [CycleError].
	KindRequired Kind = iota

	// KindUsed is a soft dependency: the target must be included somewhere in the order, but
	// not necessarily before the declaring module.
	KindUsed
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "require"
	case KindUsed:
		return "use"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Dependency is one declared edge from a module to a target [ModuleKey].  Dependency is
// comparable, so it can be used as a map key or stored in a set; two declarations of the same
// (target, kind) pair are the same Dependency.
type Dependency struct {
	Key  ModuleKey
	Kind Kind
}

// String renders the dependency in the marker form it was declared with, e.g.
// "@require foobar/foo.js" or "@use foobar/bar.js".
func (d Dependency) String() string {
	return "@" + d.Kind.String() + " " + d.Key.String()
}

// DependencyCompare is used to sort a collection of [Dependency] values.  Dependencies are
// ordered by [ModuleKeyCompare] on their targets, with required sorting before used for the
// same target.
func DependencyCompare(a, b Dependency) int {
	if c := ModuleKeyCompare(a.Key, b.Key); c != 0 {
		return c
	}
	return int(a.Kind) - int(b.Kind)
}
