package main

import (
	"fmt"

	"github.com/creachadair/command"
	"github.com/ebenson6295/etld/internal/pslformat"
)

var validateArgs struct {
	Quiet bool `flag:"q,Only print the summary line, not each invalid rule"`
}

func runValidate(env *command.Env, pslFile string) error {
	bs, err := readFile(pslFile)
	if err != nil {
		return err
	}

	res, errs := pslformat.ParseWithDiagnostics(bs)

	if !validateArgs.Quiet {
		for _, e := range errs {
			fmt.Fprintln(env, e)
		}
	}

	fmt.Fprintf(env, "%d rules, %d comment lines, %d blank lines, %d invalid rules\n",
		len(res.Rules), res.NumCommentLines, res.NumWhitespaceLines, res.NumInvalidRules)

	if res.NumInvalidRules > 0 {
		return fmt.Errorf("file has %d invalid rule(s)", res.NumInvalidRules)
	}
	return nil
}
