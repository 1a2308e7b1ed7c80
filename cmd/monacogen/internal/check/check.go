// Package check implements the `monacogen check` subcommand.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/b0x-Cub3d/rust-monaco/enumgen/parser"
)

type Cmd struct {
	Inputs []string `help:"TypeScript input files or globs (default: *.d.ts)." short:"i" default:"*.d.ts"`
}

// Run parses every input and infers each enum's value type, reporting
// what would be generated without writing anything.
func (c *Cmd) Run() error {
	var inputs []string
	for _, pattern := range c.Inputs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("bad input pattern %q: %w", pattern, err)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs matched %v", c.Inputs)
	}
	sort.Strings(inputs)

	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		enums, err := parser.ParseAll(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, enum := range enums {
			ty, err := enum.ValueType()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Printf("✓ %s: enum %s (%d variants, %s values)\n", path, enum.Ident, len(enum.Variants), ty)
		}
	}
	return nil
}
