package main

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/creachadair/command"
	"github.com/ebenson6295/etld/internal/pslformat"
	"github.com/ebenson6295/etld/internal/rule"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var listArgs struct {
	ExceptionsOnly bool `flag:"exceptions-only,Only list exception rules"`
}

// ruleCollator orders rules by their dotted string form using the
// general English collation, so that a human reviewing a large rule
// set sees a sensible, Unicode-aware order rather than raw byte
// order. This is purely a presentation concern: the matcher itself
// never sorts or collates rules.
var (
	ruleCollator   = collate.New(language.English)
	ruleCollatorMu sync.Mutex
)

func compareRuleText(a, b string) int {
	ruleCollatorMu.Lock()
	defer ruleCollatorMu.Unlock()
	var buf collate.Buffer
	ka := ruleCollator.KeyFromString(&buf, a)
	kb := ruleCollator.KeyFromString(&buf, b)
	return bytes.Compare(ka, kb)
}

func runList(env *command.Env, pslFile string) error {
	bs, err := readFile(pslFile)
	if err != nil {
		return err
	}
	res := pslformat.Parse(bs)

	rules := res.Rules
	if listArgs.ExceptionsOnly {
		var filtered []rule.Rule
		for _, r := range rules {
			if r.IsException() {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	texts := make([]string, len(rules))
	for i, r := range rules {
		texts[i] = r.String()
	}
	sort.Slice(texts, func(i, j int) bool {
		return compareRuleText(texts[i], texts[j]) < 0
	})

	for _, t := range texts {
		fmt.Fprintln(env, t)
	}
	return nil
}
