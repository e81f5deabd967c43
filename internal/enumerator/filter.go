package enumerator

import (
	"github.com/bmatcuk/doublestar/v4"
)

// SocketPattern matches the names local X servers give their sockets.
// Any name starting with X is accepted; the connector rejects malformed suffixes.
const SocketPattern = "X*"

// EntryFilter decides which directory entries are display candidates.
type EntryFilter interface {
	// ShouldInclude returns true if the entry name should be tried as a display
	ShouldInclude(name string) bool
}

// GlobFilter implements EntryFilter using a case-sensitive glob pattern.
type GlobFilter struct {
	pattern string
}

// NewGlobFilter creates a new GlobFilter with the given pattern.
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{pattern: pattern}
}

// NewSocketFilter returns the filter for X display socket names.
func NewSocketFilter() *GlobFilter {
	return NewGlobFilter(SocketPattern)
}

// ShouldInclude returns true if name matches the glob pattern.
func (f *GlobFilter) ShouldInclude(name string) bool {
	matched, err := doublestar.Match(f.pattern, name)
	if err != nil {
		// If pattern is invalid, don't match
		return false
	}

	return matched
}

// Identifier derives the display identifier from a socket name: the name
// minus its first character, prefixed with a colon. "X0" becomes ":0".
func Identifier(name string) string {
	if name == "" {
		return ":"
	}

	return ":" + name[1:]
}
