package rule

import (
	"strings"

	"github.com/ebenson6295/etld/internal/domain"
)

// ParseRule parses a single PSL rule line (already stripped of
// whatever line-classification the caller used to decide this is a
// rule line, not a comment or blank line).
//
// Programmatic construction of a Rule from text always goes through
// ParseRule, so the error it returns is the caller's to handle. The
// whole-file parser (internal/pslformat's Parse) instead catches these
// errors itself and tallies them as invalid lines.
func ParseRule(line string) (Rule, error) {
	// The PSL allows inline trailing content after a single ASCII
	// space; only the prefix before the first space is the rule.
	if i := strings.IndexByte(line, ' '); i >= 0 {
		line = line[:i]
	}

	if line == "" {
		return Rule{}, EmptyRuleError{}
	}

	var isWildcard, isException bool
	switch line[0] {
	case '*':
		isWildcard = true
	case '!':
		isException = true
		line = line[1:]
	case '/':
		return Rule{}, IllegalPrefixError{Text: line}
	}

	parts := strings.Split(line, ".")
	labels := make([]domain.Label, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			if i == len(parts)-1 {
				return Rule{}, TrailingDelimiterError{Text: line}
			}
			return Rule{}, AdjacentDelimitersError{Text: line}
		}
		labels = append(labels, domain.Label(p))
	}

	return New(labels, isWildcard, isException), nil
}
