package scriptdeps

import (
	"errors"
	"strings"

	"golang.org/x/mod/module"
)

// A ModuleKey uniquely identifies one script module within a [Graph].  It is shaped like a
// relative file path with forward-slash separators and no leading "./", for example
// "foobar/foo.js".  Use [NewModuleKey] to normalize arbitrary path input into this form.
type ModuleKey string

// NewModuleKey normalizes the given path into a [ModuleKey]: backslash separators are replaced
// with forward slashes and a leading "./" is stripped.  No validation is performed; see
// [ModuleKey.Check].
func NewModuleKey(path string) ModuleKey {
	path = strings.ReplaceAll(path, `\`, "/")
	path = strings.TrimPrefix(path, "./")
	return ModuleKey(path)
}

// Check asserts that the key is non-empty and is a clean relative slash-separated file path
// (no "." or ".." elements, no invalid characters).  Keys taken from annotation markers are
// already constrained by the marker grammar, but keys derived from filesystem walks should be
// checked before they are registered in a [Graph].
func (k ModuleKey) Check() error {
	if k == "" {
		return errors.New("module key is the empty string")
	}
	return module.CheckFilePath(string(k))
}

func (k ModuleKey) String() string {
	return string(k)
}

// ModuleKeyCompare is used to sort a collection of [ModuleKey] values.  It returns
// [strings.Compare] on the two keys.
func ModuleKeyCompare(a, b ModuleKey) int {
	return strings.Compare(string(a), string(b))
}
