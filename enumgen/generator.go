// Package enumgen generates Rust enum bindings from TypeScript enum
// declarations.
//
// The pipeline is: read each input file, parse every `export enum`
// declaration into ir descriptors, infer each enum's value type, and emit
// the corresponding int_enum!/str_enum! macro invocations through an
// output sink, one generated .rs file per input.
package enumgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/parser"
	"github.com/b0x-Cub3d/rust-monaco/enumgen/rust"
	"github.com/b0x-Cub3d/rust-monaco/enumgen/sink"
)

// Config holds the configuration for code generation.
type Config struct {
	// OutDir is the directory where generated files are written.
	OutDir string `validate:"required"`

	// Inputs are the TypeScript source files to translate.
	Inputs []string `validate:"required,min=1,dive,required"`

	// IndentSize is the number of spaces per indent level in generated
	// Rust. Default: 4.
	IndentSize int `validate:"gte=0,lte=16"`

	// PreserveComments controls whether documentation comments are
	// carried into the generated Rust.
	// Supported values: "default" (preserve), "none".
	PreserveComments string `validate:"omitempty,oneof=default none"`

	// Frontmatter is content added to the top of each generated file.
	// Useful for attribution headers or use declarations.
	Frontmatter string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Generate translates every configured input file and writes one .rs file
// per input into OutDir. Any parse or inference failure aborts the whole
// batch.
func Generate(cfg *Config) error {
	cfg = applyConfigDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return GenerateTo(context.Background(), sink.NewFilesystemSink(cfg.OutDir), cfg)
}

// GenerateTo is Generate with an explicit sink, mainly for tests and the
// dev server. cfg must already have defaults applied or be fully
// populated.
func GenerateTo(ctx context.Context, out sink.OutputSink, cfg *Config) error {
	cfg = applyConfigDefaults(cfg)

	emitCfg := rust.Config{
		IndentSize:   cfg.IndentSize,
		EmitComments: cfg.PreserveComments != "none",
	}

	for _, path := range cfg.Inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		generated, err := RenderSource(string(data), emitCfg)
		if err != nil {
			return fmt.Errorf("generate %s: %w", path, err)
		}
		if cfg.Frontmatter != "" {
			generated = cfg.Frontmatter + "\n" + generated
		}

		if err := out.WriteFile(ctx, OutputName(path), []byte(generated)); err != nil {
			return fmt.Errorf("write output for %s: %w", path, err)
		}
	}
	return nil
}

// RenderSource translates every enum declaration in src and returns the
// generated Rust text, declarations in source order. This is the pure
// text-to-text core; file handling lives in Generate.
func RenderSource(src string, cfg rust.Config) (string, error) {
	enums, err := parser.ParseAll(src)
	if err != nil {
		return "", err
	}
	return rust.NewEmitter(cfg).EmitSource(enums)
}

// OutputName maps an input file name to its generated file name:
// "editor.d.ts" and "editor.ts" both become "editor.rs".
func OutputName(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".ts")
	base = strings.TrimSuffix(base, ".d")
	return base + ".rs"
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.IndentSize == 0 {
		result.IndentSize = 4
	}
	if result.PreserveComments == "" {
		result.PreserveComments = "default"
	}
	return &result
}
