// Package gen implements the `monacogen gen` subcommand.
package gen

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"

	"github.com/b0x-Cub3d/rust-monaco/enumgen"
)

type Cmd struct {
	Out         string   `arg:"" help:"Output directory for generated files."`
	Inputs      []string `help:"TypeScript input files or globs (default: *.d.ts)." short:"i" default:"*.d.ts"`
	Indent      int      `help:"Spaces per indent level in generated Rust." default:"4"`
	NoComments  bool     `help:"Drop documentation comments from the output."`
	Frontmatter string   `help:"Content prepended to each generated file."`
	Watch       bool     `help:"Watch inputs and regenerate on change." short:"w"`
}

func (c *Cmd) Run() error {
	inputs, err := expandInputs(c.Inputs)
	if err != nil {
		return err
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	cfg := &enumgen.Config{
		OutDir:      out,
		Inputs:      inputs,
		IndentSize:  c.Indent,
		Frontmatter: c.Frontmatter,
	}
	if c.NoComments {
		cfg.PreserveComments = "none"
	}

	if err := enumgen.Generate(cfg); err != nil {
		return err
	}
	fmt.Printf("generated %d file(s) in %s\n", len(inputs), out)

	if c.Watch {
		return watch(cfg)
	}
	return nil
}

// expandInputs resolves globs and deduplicates the resulting paths.
func expandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var inputs []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				inputs = append(inputs, m)
			}
		}
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs matched %v", patterns)
	}
	sort.Strings(inputs)
	return inputs, nil
}

// watch blocks, regenerating the whole batch whenever any input file
// changes. A failed regeneration is logged and watching continues; the
// last good output stays in place.
func watch(cfg *enumgen.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories rather than files so editors that replace files
	// on save (rename + create) don't drop the watch.
	dirs := make(map[string]bool)
	for _, input := range cfg.Inputs {
		dirs[filepath.Dir(input)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	watched := make(map[string]bool, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return err
		}
		watched[abs] = true
	}

	slog.Info("watching for changes", "inputs", len(cfg.Inputs))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if err := enumgen.Generate(cfg); err != nil {
				slog.Error("regeneration failed", "input", event.Name, "error", err)
				continue
			}
			slog.Info("regenerated", "input", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
