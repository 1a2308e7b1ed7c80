// Command monacogen translates TypeScript enum declarations from the
// monaco editor API into Rust macro-based enum definitions.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/b0x-Cub3d/rust-monaco/cmd/monacogen/internal/check"
	"github.com/b0x-Cub3d/rust-monaco/cmd/monacogen/internal/dev"
	"github.com/b0x-Cub3d/rust-monaco/cmd/monacogen/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate Rust enum bindings from TypeScript sources."`
	Check   check.Cmd  `cmd:"" help:"Parse and type-check inputs without writing files."`
	Dev     dev.Cmd    `cmd:"" help:"Start an HTTP preview server for generated output."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("monacogen"),
		kong.Description("Generate rust-monaco enum bindings from monaco.d.ts sources."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
