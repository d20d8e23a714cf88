// Package pslformat implements the line-oriented text parser for PSL
// rule files: it classifies every input line as whitespace, comment,
// rule, or invalid rule, and accumulates the resulting rules and
// line-type counts into a Result.
//
// Parsing never aborts on a bad line. A malformed rule is tallied as
// invalid and parsing continues with the next line, so a single typo
// in a large PSL file does not prevent the rest of the file from
// being usable.
package pslformat

import (
	"strings"

	"github.com/ebenson6295/etld/internal/rule"
)

// Result is the outcome of parsing a full PSL text buffer: the rules
// that parsed successfully, plus counts of every other kind of line
// encountered. All counters are non-negative, and
// NumWhitespaceLines + NumCommentLines + NumInvalidRules + len(Rules)
// always equals the number of lines in the input.
type Result struct {
	Rules              []rule.Rule
	NumWhitespaceLines int
	NumCommentLines    int
	NumInvalidRules    int
}

// Parse parses bs as PSL rule text.
//
// Parse tolerates encoding deviations (see normalizeToUTF8Lines) and
// per-line rule errors; it does not return an error of its own. Rules
// that fail to parse are counted in Result.NumInvalidRules and
// otherwise silently dropped, following the propagation policy in the
// error handling design: the text parser is the one place that
// swallows rule.ParseRule errors instead of propagating them.
func Parse(bs []byte) Result {
	res, _ := ParseWithDiagnostics(bs)
	return res
}

// ParseWithDiagnostics is Parse, but also returns the errors
// encountered along the way: encoding deviations from
// normalizeToUTF8Lines, and one InvalidRuleError per invalid rule
// line, each carrying the line number it was found on.
//
// The core Match/Apply path never needs these diagnostics — Result
// alone is enough to build a RuleSet — but a tool presenting PSL
// validation results to a human wants to say which line and why.
func ParseWithDiagnostics(bs []byte) (Result, []error) {
	lines, errs := normalizeToUTF8Lines(bs)

	var res Result
	for i, line := range lines {
		if err := classifyLine(line, i+1, &res); err != nil {
			errs = append(errs, err)
		}
	}
	return res, errs
}

// classifyLine classifies a single line of PSL text and updates res
// accordingly, returning a diagnostic error if the line was an
// invalid rule.
func classifyLine(line string, lineNum int, res *Result) error {
	switch {
	case strings.TrimSpace(line) == "":
		res.NumWhitespaceLines++
		return nil
	case strings.HasPrefix(line, "//"):
		res.NumCommentLines++
		return nil
	default:
		r, err := rule.ParseRule(line)
		if err != nil {
			res.NumInvalidRules++
			return InvalidRuleError{SourceRange{Line: lineNum}, line, err}
		}
		res.Rules = append(res.Rules, r)
		return nil
	}
}
