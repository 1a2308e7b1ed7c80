package parser

import "fmt"

// ParseError reports input that does not begin with an expected construct.
// The error carries the unconsumed input at the point of failure; the
// caller's input is left untouched.
type ParseError struct {
	// Expected describes the construct that failed to match.
	Expected string

	// Input is a snippet of the unconsumed input at the failure point.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at %q", e.Expected, e.Input)
}

// snippet truncates s for inclusion in error messages.
func snippet(s string) string {
	const max = 60
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
