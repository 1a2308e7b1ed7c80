package ir

// TypeError reports a variant literal whose value type cannot be inferred,
// or an enum whose variants disagree on a value type.
type TypeError struct {
	// Message is a human-readable description including the offending
	// identifier and literal.
	Message string
}

func (e *TypeError) Error() string {
	return e.Message
}

// EmptyEnumError reports an enum with no variants to infer a type from.
type EmptyEnumError struct {
	// Enum is the enum's identifier.
	Enum string
}

func (e *EmptyEnumError) Error() string {
	return "can't infer value type for empty enum: " + e.Enum
}
