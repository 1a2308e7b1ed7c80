package rust

import (
	"strings"
	"unicode"
)

// toPascalCase converts snake_case and SCREAMING_SNAKE identifiers to
// PascalCase enumerant names. Mixed-case segments keep their interior
// casing, so already-Pascal input passes through unchanged and the
// transform is idempotent.
//
// Examples: "max_value" -> "MaxValue", "MY_FIELD" -> "MyField",
// "AlreadyPascal" -> "AlreadyPascal".
func toPascalCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		tail := string(runes[1:])
		if isAllUpper(part) {
			tail = strings.ToLower(tail)
		}
		b.WriteString(tail)
	}
	return b.String()
}

// isAllUpper reports whether s contains no lowercase letters.
func isAllUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
