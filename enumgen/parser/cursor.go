package parser

import (
	"regexp"
	"strings"
)

// consumeMatch matches re against the start of s. On success it returns
// the named captures and the remainder of s with the match removed. If s
// does not begin with a match it returns a *ParseError describing what;
// the returned remainder is s unchanged.
//
// re must be anchored with ^.
func consumeMatch(what string, re *regexp.Regexp, s string) (map[string]string, string, error) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil || m[0] != 0 {
		return nil, s, &ParseError{Expected: what, Input: snippet(s)}
	}

	captures := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || m[2*i] < 0 {
			continue
		}
		captures[name] = s[m[2*i]:m[2*i+1]]
	}
	return captures, s[m[1]:], nil
}

// skipBlankLines removes any run of empty or whitespace-only lines at the
// start of s. It is idempotent and never fails.
func skipBlankLines(s string) string {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return s
		}
		if strings.TrimRight(s[:i], " \t") != "" {
			return s
		}
		s = s[i+1:]
	}
}

// readBalanced scans s, which begins just after an opening brace, and
// returns the content up to the matching closing brace plus the remainder
// after it. Nested braces are tracked by depth. Unbalanced input is a
// *ParseError.
func readBalanced(s string) (body, rest string, err error) {
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
			depth--
		}
	}
	return "", s, &ParseError{Expected: "matching closing brace", Input: snippet(s)}
}
