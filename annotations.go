package scriptdeps

import (
	"regexp"
)

// Markers are matched per physical line inside comment continuations: optional leading
// whitespace, a "*", optional whitespace, "@" or "%" followed by the keyword, whitespace, then
// the target key, then nothing but whitespace to end of line.  Anything else on the line
// disqualifies it, and unmatched lines are silently ignored.
var (
	requireMarker = regexp.MustCompile(`(?m)^\s*\*\s*[@%]require\s+([A-Za-z0-9/\-.]+)\s*$`)
	useMarker     = regexp.MustCompile(`(?m)^\s*\*\s*[@%]use\s+([A-Za-z0-9/\-.]+)\s*$`)
)

// ExtractDependencies scans a module's source text for dependency markers and returns the
// declared dependencies: first every required target in textual order, then every used target
// in textual order.  The relative position of a "@use" marker before a "@require" marker in
// the source has no effect; required targets always come first in the returned list.
//
// The target token is taken as-is (beyond the normalization done by [NewModuleKey]); no check
// is made that it names a registered module.  ExtractDependencies is a pure function of the
// source text.
func ExtractDependencies(src string) []Dependency {
	var deps []Dependency
	for _, m := range requireMarker.FindAllStringSubmatch(src, -1) {
		deps = append(deps, Dependency{Key: NewModuleKey(m[1]), Kind: KindRequired})
	}
	for _, m := range useMarker.FindAllStringSubmatch(src, -1) {
		deps = append(deps, Dependency{Key: NewModuleKey(m[1]), Kind: KindUsed})
	}
	return deps
}
