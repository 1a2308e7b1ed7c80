// Package rust emits Rust source for parsed enum declarations.
//
// Each enum is rendered as a `pub enum` block wrapped in one of exactly
// two macro invocations, int_enum! or str_enum!, selected by the enum's
// inferred value type. The macro names and the emitted shape are the wire
// format consumed by the rust-monaco crates.
package rust

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/ir"
)

// Config controls Rust emission.
type Config struct {
	// IndentSize is the number of spaces per indent level.
	IndentSize int

	// EmitComments includes documentation comments in the output.
	EmitComments bool
}

// DefaultConfig returns the emission defaults: four-space indents with
// documentation comments preserved.
func DefaultConfig() Config {
	return Config{IndentSize: 4, EmitComments: true}
}

// Emitter renders ir enum descriptors as Rust macro invocations.
// Emitters are stateless and safe for concurrent use.
type Emitter struct {
	config Config
}

// NewEmitter creates an Emitter. A non-positive IndentSize falls back to
// the default of four spaces.
func NewEmitter(cfg Config) *Emitter {
	if cfg.IndentSize <= 0 {
		cfg.IndentSize = 4
	}
	return &Emitter{config: cfg}
}

// macroName selects the wrapper macro for an inferred value type. The
// mapping is closed: a new ValueType must be added here before it can be
// emitted.
func macroName(t ir.ValueType) (string, error) {
	switch t {
	case ir.ValueInt:
		return "int_enum!", nil
	case ir.ValueString:
		return "str_enum!", nil
	default:
		return "", fmt.Errorf("no macro template for value type %s", t)
	}
}

// EmitEnum renders one enum, with its documentation, as a macro
// invocation block. Type inference failures propagate unchanged; nothing
// is written to buf on error.
func (e *Emitter) EmitEnum(buf *bytes.Buffer, enum *ir.EnumDescriptor) error {
	ty, err := enum.ValueType()
	if err != nil {
		return err
	}
	macro, err := macroName(ty)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	for i := range enum.Variants {
		if i > 0 {
			body.WriteByte('\n')
		}
		e.emitVariant(&body, &enum.Variants[i])
	}

	decl := fmt.Sprintf("pub enum %s {\n%s\n}", enum.Ident, e.indent(body.String()))

	if e.config.EmitComments {
		e.emitDoc(buf, enum.Documentation)
	}
	buf.WriteString(macro)
	buf.WriteString(" {\n")
	buf.WriteString(e.indent(decl))
	buf.WriteString("\n}")
	return nil
}

// emitVariant renders one `Ident = value,` line, re-casing the identifier
// into Rust's conventional PascalCase and keeping the literal text
// unchanged.
func (e *Emitter) emitVariant(buf *bytes.Buffer, v *ir.Variant) {
	if e.config.EmitComments {
		e.emitDoc(buf, v.Documentation)
	}
	buf.WriteString(toPascalCase(v.Ident))
	buf.WriteString(" = ")
	buf.WriteString(v.Value)
	buf.WriteString(",")
}

// emitDoc renders documentation lines as Rust doc comments.
func (e *Emitter) emitDoc(buf *bytes.Buffer, doc ir.Documentation) {
	for _, line := range doc.Lines {
		buf.WriteString("///")
		if line != "" {
			buf.WriteString(" ")
			buf.WriteString(line)
		}
		buf.WriteString("\n")
	}
}

// indent prefixes every non-empty line of s with one indent level.
func (e *Emitter) indent(s string) string {
	pad := strings.Repeat(" ", e.config.IndentSize)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// EmitSource renders a sequence of enums as one source blob, blocks
// separated by blank lines, in the given order.
func (e *Emitter) EmitSource(enums []*ir.EnumDescriptor) (string, error) {
	var buf bytes.Buffer
	for i, enum := range enums {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		if err := e.EmitEnum(&buf, enum); err != nil {
			return "", fmt.Errorf("emit enum %s: %w", enum.Ident, err)
		}
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
