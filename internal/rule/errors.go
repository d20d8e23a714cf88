package rule

import "fmt"

// EmptyRuleError reports that a rule line was empty after truncating
// at the first ASCII space.
type EmptyRuleError struct{}

func (e EmptyRuleError) Error() string { return "rule text is empty" }

// IllegalPrefixError reports that a rule line began with "/", which
// the PSL format reserves for pseudo-comments.
type IllegalPrefixError struct {
	Text string
}

func (e IllegalPrefixError) Error() string {
	return fmt.Sprintf("rule %q begins with an illegal '/' prefix", e.Text)
}

// AdjacentDelimitersError reports that a rule line contained two "."
// in a row, producing an empty label.
type AdjacentDelimitersError struct {
	Text string
}

func (e AdjacentDelimitersError) Error() string {
	return fmt.Sprintf("rule %q contains adjacent '.' delimiters", e.Text)
}

// TrailingDelimiterError reports that a rule line ended with a ".",
// producing an empty final label.
type TrailingDelimiterError struct {
	Text string
}

func (e TrailingDelimiterError) Error() string {
	return fmt.Sprintf("rule %q has a trailing '.' delimiter", e.Text)
}
