// Package parser consumes TypeScript-style `export enum` declarations and
// produces ir descriptors.
//
// The grammar is a narrow, fixed subset of TypeScript, so the parser is a
// handful of anchored-pattern consumers rather than a full lexer: each
// function takes the unconsumed input, returns a parsed value plus the
// remainder, and fails with a *ParseError at the first mismatch. There is
// no recovery; a malformed variant aborts its whole enum.
package parser

import (
	"regexp"
	"strings"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/ir"
)

var (
	variantPattern  = regexp.MustCompile(`^ *(?P<ident>\w+) = (?P<value>.+?),\n`)
	enumOpenPattern = regexp.MustCompile(`^ *export enum (?P<ident>\w+) \{\n`)
)

// ConsumeVariant parses one `ident = value,` line, plus its documentation
// block, from the start of s. The value is captured verbatim up to the
// trailing comma; classification is deferred to ir.Variant.ValueType. On
// failure the remainder is s unchanged.
func ConsumeVariant(s string) (ir.Variant, string, error) {
	doc, rest := extractDoc(s)

	caps, rest, err := consumeMatch("variant line `ident = value,`", variantPattern, rest)
	if err != nil {
		return ir.Variant{}, s, err
	}
	rest = skipBlankLines(rest)

	return ir.Variant{
		Ident:         caps["ident"],
		Value:         caps["value"],
		Documentation: doc,
	}, rest, nil
}

// ConsumeEnum parses one `export enum Name { ... }` declaration, plus its
// documentation block, from the start of s. The bracket-balanced body is
// consumed variant by variant until exhausted. On failure the remainder is
// s unchanged.
func ConsumeEnum(s string) (*ir.EnumDescriptor, string, error) {
	doc, rest := extractDoc(s)

	caps, rest, err := consumeMatch("enum header `export enum Name {`", enumOpenPattern, rest)
	if err != nil {
		return nil, s, err
	}
	rest = skipBlankLines(rest)

	body, rest, err := readBalanced(rest)
	if err != nil {
		return nil, s, err
	}
	rest = skipBlankLines(rest)

	enum := &ir.EnumDescriptor{
		Ident:         caps["ident"],
		Documentation: doc,
	}
	for strings.TrimSpace(body) != "" {
		variant, remaining, err := ConsumeVariant(body)
		if err != nil {
			return nil, s, err
		}
		enum.Variants = append(enum.Variants, variant)
		body = remaining
	}
	return enum, rest, nil
}

// ParseAll parses every consecutive enum declaration in src, preserving
// encounter order. Declarations are separated by blank lines; anything
// else is a *ParseError.
func ParseAll(src string) ([]*ir.EnumDescriptor, error) {
	var enums []*ir.EnumDescriptor

	s := skipBlankLines(src)
	for strings.TrimSpace(s) != "" {
		enum, rest, err := ConsumeEnum(s)
		if err != nil {
			return nil, err
		}
		enums = append(enums, enum)
		s = skipBlankLines(rest)
	}
	return enums, nil
}
