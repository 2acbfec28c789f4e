// Package scriptdeps computes the load order of a set of script modules that declare their
// dependencies on each other with annotation markers embedded in comments.
//
// # Quick Start
//
// (The following is also available as a package-level example.)
//
// Register each module's source text with a [Builder]:
//
//	b := scriptdeps.NewBuilder()
//	b.AddSource(scriptdeps.NewModuleKey("foobar/foo.js"), src)
//
// Build the immutable [Graph] and resolve it to an ordered key sequence:
//
//	g := b.Graph()
//	order, err := scriptdeps.Resolve(g)
//	if err != nil {
//		return err
//	}
//
// Use [SortByOrder] to arrange an arbitrary collection of [Keyed] values (for example
// [SourceFile] values from [ScanDir]) into that order:
//
//	files = scriptdeps.SortByOrder(files, order)
//
// Use [WriteBundle] to concatenate the ordered sources into a single bundle with dependency
// metadata appended:
//
//	if err := scriptdeps.WriteBundle(w, g, files); err != nil {
//		return err
//	}
//
// # Introduction
//
// A module declares its dependencies with one marker per physical comment line.  Two marker
// keywords exist, and they mean different things to the resolver:
//
//   - "@require other.js" (or "%require") declares a hard dependency: other.js must appear in
//     the load order strictly before the declaring module.  Hard dependencies are followed
//     recursively, so the transitive closure of required modules lands before the dependent.
//     A cycle of hard dependencies is an error.
//   - "@use other.js" (or "%use") declares a soft dependency: other.js must appear somewhere
//     in the load order, but not necessarily before the declaring module.  Soft dependencies
//     are deferred and flushed to a fixed point after each hard-dependency descent completes.
//     Because soft edges never participate in the active descent, a cycle that closes through
//     a soft edge is not an error; it simply resolves to some valid order.
//
// Dependency targets that are not themselves registered modules are "external".  They are
// never included in the load order; instead they are reported by [Graph.ExternalDependencies]
// so that callers can emit them as metadata (see [WriteBundle]) or hand them to whatever
// supplies modules from outside the current source tree.
//
// # Determinism
//
// The resolved order is a pure function of the registered modules: the top-level resolve walk
// visits module keys in first-registration order, and deferred soft targets are flushed in the
// order they were first marked.  Resolving the same [Graph] twice yields the same sequence.
//
// # Concurrency
//
// [Resolve] is synchronous and single-threaded, and a [Graph] is immutable once built, so any
// number of independent resolutions may run in parallel as long as each goroutine builds its
// own graph.  Nothing in this package uses shared mutable global state.  [ScanDir] reads and
// scans source files concurrently, but that happens before the graph is built.
package scriptdeps
