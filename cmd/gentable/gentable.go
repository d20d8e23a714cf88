// gentable reads a Public Suffix List file and compiles it into a Go
// source file containing a literal table of rules, suitable for
// embedding in a binary that wants to query the list without parsing
// it at startup. The generated file defines an init function that
// registers the table with internal/matcher via SetCompiledRules, so
// that internal/matcher.Shared() serves the compiled table with no
// further setup.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
	"time"

	"github.com/ebenson6295/etld/internal/pslformat"
	"github.com/ebenson6295/etld/internal/rule"
	"github.com/natefinch/atomic"
)

var (
	inputPath  = flag.String("in", "", "path to a PSL data file (required)")
	outputPath = flag.String("out", "", "path to write the generated Go source file (required)")
	pkgName    = flag.String("package", "main", "package name for the generated file")
)

// tableTemplate renders a compiled rule table as a Go source file.
//
// Expected template data:
//
//	Package - the package name for the generated file.
//	Source  - the path the table was generated from.
//	Date    - the time the table was generated.
//	Rules   - the rules to render, as []templateRule values.
var tableTemplate = template.Must(template.New("gentable").Funcs(template.FuncMap{
	"labels": func(ls []string) string {
		var buf bytes.Buffer
		for i, l := range ls {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", l)
		}
		return buf.String()
	},
}).Parse(`// Code generated by gentable from {{ .Source }} on {{ .Date.Format "2006-01-02" }}. DO NOT EDIT.

package {{ .Package }}

import (
	"github.com/ebenson6295/etld/internal/domain"
	"github.com/ebenson6295/etld/internal/matcher"
	"github.com/ebenson6295/etld/internal/rule"
)

var compiledRules = []rule.Serialized{
{{- range .Rules }}
	{IsWildcard: {{ .IsWildcard }}, IsException: {{ .IsException }}, Labels: labels({{ labels .Labels }})},
{{- end }}
}

func labels(ss ...string) []domain.Label {
	ls := make([]domain.Label, len(ss))
	for i, s := range ss {
		ls[i] = domain.Label(s)
	}
	return ls
}

func init() {
	matcher.SetCompiledRules(compiledRules)
}
`))

type templateRule struct {
	IsWildcard  bool
	IsException bool
	Labels      []string
}

type templateData struct {
	Package string
	Source  string
	Date    time.Time
	Rules   []templateRule
}

func main() {
	flag.Parse()
	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: gentable -in <psl-file> -out <out.go> [-package name]")
		os.Exit(2)
	}

	if err := run(*inputPath, *outputPath, *pkgName); err != nil {
		log.Fatal(err)
	}
}

func run(in, out, pkg string) error {
	bs, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", in, err)
	}

	res := pslformat.Parse(bs)
	rules := make([]templateRule, len(res.Rules))
	for i, r := range res.Rules {
		s := r.ToSerialized()
		ls := make([]string, len(s.Labels))
		for j, l := range s.Labels {
			ls[j] = l.String()
		}
		rules[i] = templateRule{IsWildcard: s.IsWildcard, IsException: s.IsException, Labels: ls}
	}

	var buf bytes.Buffer
	err = tableTemplate.Execute(&buf, templateData{
		Package: pkg,
		Source:  in,
		Date:    time.Now(),
		Rules:   rules,
	})
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to gofmt generated source: %w", err)
	}

	if err := atomic.WriteFile(out, bytes.NewReader(formatted)); err != nil {
		return fmt.Errorf("failed to write %q: %w", out, err)
	}
	return nil
}
