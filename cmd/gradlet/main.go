// Command gradlet is the command-line entry point for the gradlet scalar
// network library.
//
// To run the training demo: `go run ./cmd/gradlet train --seed=42 --epochs=100`
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

const version = "v0.1.0-dev"

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&TrainCommand{}, "")
	subcommands.Register(&VersionCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

type VersionCommand struct{}

var _ subcommands.Command = (*VersionCommand)(nil)

func (*VersionCommand) Name() string {
	return "version"
}

func (*VersionCommand) Synopsis() string {
	return "Show version"
}

func (*VersionCommand) Usage() string {
	return ``
}

func (*VersionCommand) SetFlags(f *flag.FlagSet) {}

func (*VersionCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("gradlet %s\n", version)
	return subcommands.ExitSuccess
}
