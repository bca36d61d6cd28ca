// Command rl recommends investment allocations for Sri Lankan investors.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rupeelogic/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	cmd.Completion(cmd.Commands).Complete("rl")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
