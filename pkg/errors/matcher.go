package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Rules are checked in order; the first category with a matching pattern wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		rules: []matchRule{
			{CategoryDisplayName, []string{
				"bad display string",
				"empty display string",
				"invalid display",
			}},
			{CategoryAuthorization, []string{
				"authentication refused",
				"authorization required",
				"no protocol specified",
				"invalid mit-magic-cookie",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"operation not permitted",
				"access denied",
			}},
			{CategoryRefused, []string{
				"connection refused",
				"connection reset",
			}},
			{CategorySocketMissing, []string{
				"no such file or directory",
				"not a socket",
				"socket operation on non-socket",
			}},
			{CategoryProtocol, []string{
				"protocol version mismatch",
				"unexpected eof",
				"short read",
			}},
		},
	}
}

// matchRule pairs a category with the substrings that identify it.
type matchRule struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	rules []matchRule
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}
