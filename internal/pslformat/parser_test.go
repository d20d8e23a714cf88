package pslformat_test

import (
	"strings"
	"testing"

	"github.com/ebenson6295/etld/internal/pslformat"
)

const sampleList = `// This is a comment
com

// A section header comment
co.uk

*.kobe.jp
!city.kobe.jp

/this-is-illegal
example..org
`

func TestParseClassifiesLines(t *testing.T) {
	res := pslformat.Parse([]byte(sampleList))

	if got, want := len(res.Rules), 4; got != want {
		t.Errorf("len(Rules) = %d, want %d", got, want)
	}
	if got, want := res.NumCommentLines, 2; got != want {
		t.Errorf("NumCommentLines = %d, want %d", got, want)
	}
	if got, want := res.NumInvalidRules, 2; got != want {
		t.Errorf("NumInvalidRules = %d, want %d", got, want)
	}
	// Blank lines: after each comment/rule group, plus the trailing
	// newline produces a final empty line from strings.Split.
	if res.NumWhitespaceLines == 0 {
		t.Errorf("NumWhitespaceLines = 0, want > 0")
	}
}

// TestLineCountConservation verifies testable property 8:
// NumWhitespaceLines + NumCommentLines + NumInvalidRules + len(Rules)
// equals the number of input lines.
func TestLineCountConservation(t *testing.T) {
	res := pslformat.Parse([]byte(sampleList))
	numLines := strings.Count(sampleList, "\n") + 1 // trailing content after last \n, if any
	// sampleList ends with "\n", so strings.Split produces one extra
	// empty trailing element; Count+1 matches that split exactly.
	total := res.NumWhitespaceLines + res.NumCommentLines + res.NumInvalidRules + len(res.Rules)
	if total != numLines {
		t.Errorf("line count conservation failed: got %d, want %d", total, numLines)
	}
}

func TestParseEmpty(t *testing.T) {
	res := pslformat.Parse(nil)
	if len(res.Rules) != 0 || res.NumWhitespaceLines != 0 || res.NumCommentLines != 0 || res.NumInvalidRules != 0 {
		t.Errorf("Parse(nil) = %+v, want zero value", res)
	}
}

func TestParseWithDiagnosticsReportsLineNumbers(t *testing.T) {
	_, errs := pslformat.ParseWithDiagnostics([]byte("com\nexample..org\n"))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	var target pslformat.InvalidRuleError
	if !asInvalidRuleError(errs[0], &target) {
		t.Fatalf("error %v is not an InvalidRuleError", errs[0])
	}
	if target.Line != 2 {
		t.Errorf("InvalidRuleError.Line = %d, want 2", target.Line)
	}
}

func asInvalidRuleError(err error, target *pslformat.InvalidRuleError) bool {
	e, ok := err.(pslformat.InvalidRuleError)
	if ok {
		*target = e
	}
	return ok
}
