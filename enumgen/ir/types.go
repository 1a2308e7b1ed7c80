// Package ir defines the intermediate representation for enum declarations.
// These types are target-language-agnostic: the parser produces them from
// TypeScript source and emitters transform them into generated code.
package ir

// Documentation holds the payload lines of a documentation-comment block
// extracted from source.
type Documentation struct {
	// Lines are the comment payload lines in source order, with the
	// comment syntax stripped and newlines removed.
	Lines []string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return len(d.Lines) == 0
}

// ValueType identifies the literal type shared by an enum's variants.
type ValueType int

const (
	// ValueInt is an all-digit integer literal.
	ValueInt ValueType = iota

	// ValueString is a double-quoted string literal.
	ValueString
)

// String returns the string representation of the value type.
func (t ValueType) String() string {
	switch t {
	case ValueInt:
		return "int"
	case ValueString:
		return "string"
	default:
		return "unknown"
	}
}
