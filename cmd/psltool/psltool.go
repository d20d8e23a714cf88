// psltool is a command-line tool to query and validate Public Suffix
// List files using the etld engine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
)

func main() {
	root := &command.C{
		Name:  filepath.Base(os.Args[0]),
		Usage: "command [flags] ...\nhelp [command]",
		Help:  "A command-line tool to query and validate PSL rule files.",
		Commands: []*command.C{
			{
				Name:     "query",
				Usage:    "<psl-file> <domain>",
				Help:     "Look up the TLD, domain, and subdomain segments of a hostname.",
				SetFlags: command.Flags(flax.MustBind, &queryArgs),
				Run:      command.Adapt(runQuery),
			},
			{
				Name:     "validate",
				Usage:    "<psl-file>",
				Help:     "Parse a PSL file and report invalid lines.",
				SetFlags: command.Flags(flax.MustBind, &validateArgs),
				Run:      command.Adapt(runValidate),
			},
			{
				Name:     "list",
				Usage:    "<psl-file>",
				Help:     "Print the rules in a PSL file, collated for human review.",
				SetFlags: command.Flags(flax.MustBind, &listArgs),
				Run:      command.Adapt(runList),
			},
			{
				Name:  "diff",
				Usage: "<psl-file-a> <psl-file-b> <domains-file>",
				Help: `Compare how two PSL files segment the same set of domains.

domains-file contains one hostname per line. The output is a unified
diff of the two files' segmentation of every hostname in the list.`,
				Run: command.Adapt(runDiff),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx).MergeFlags(true)
	command.RunOrFail(env, os.Args[1:])
}

func readFile(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return bs, nil
}
