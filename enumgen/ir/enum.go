package ir

import (
	"fmt"
	"strings"
)

// EnumDescriptor represents one parsed `export enum` declaration.
type EnumDescriptor struct {
	// Ident is the enum's type name, exactly as written in source.
	Ident string

	// Variants contains all enum members in declaration order.
	// Order is semantically significant and preserved through emission.
	Variants []Variant

	// Documentation for this declaration.
	Documentation Documentation
}

// Variant represents a single enum member.
type Variant struct {
	// Ident is the member name exactly as written in source
	// (snake or mixed case).
	Ident string

	// Value is the raw literal text, including surrounding quotes for
	// string literals. It is stored unparsed; classification happens in
	// ValueType.
	Value string

	// Documentation for this member.
	Documentation Documentation
}

// ValueType classifies the variant's literal. A leading double quote means
// a string value and an all-digit literal means an integer value; any
// other shape is a *TypeError.
func (v *Variant) ValueType() (ValueType, error) {
	if strings.HasPrefix(v.Value, `"`) {
		return ValueString, nil
	}
	if isAllDigits(v.Value) {
		return ValueInt, nil
	}
	return 0, &TypeError{
		Message: fmt.Sprintf("can't infer value type for variant %s = %s", v.Ident, v.Value),
	}
}

// ValueType infers the enum's common value type from its variants.
// It returns a *EmptyEnumError if the enum has no variants, propagates the
// first variant classification failure as-is, and returns a *TypeError if
// the variants do not agree on a single type.
func (e *EnumDescriptor) ValueType() (ValueType, error) {
	if len(e.Variants) == 0 {
		return 0, &EmptyEnumError{Enum: e.Ident}
	}

	first, err := e.Variants[0].ValueType()
	if err != nil {
		return 0, err
	}
	for i := 1; i < len(e.Variants); i++ {
		ty, err := e.Variants[i].ValueType()
		if err != nil {
			return 0, err
		}
		if ty != first {
			return 0, &TypeError{
				Message: fmt.Sprintf(
					"enum %s has multiple conflicting value types: %s = %s is %s, %s = %s is %s",
					e.Ident,
					e.Variants[0].Ident, e.Variants[0].Value, first,
					e.Variants[i].Ident, e.Variants[i].Value, ty),
			}
		}
	}
	return first, nil
}

// isAllDigits reports whether s is non-empty and consists entirely of
// ASCII digits. Signs, decimal points, and underscores all fail.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
