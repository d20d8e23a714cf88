// Package rule implements a single parsed Public Suffix List rule:
// how it is parsed from text, how it decides whether it governs a
// queried domain, and how it segments a domain it governs into a
// TLD, registrable domain, and subdomain.
//
// This is the core of the engine. Everything else (RuleSet, Matcher,
// the text parser) is built on top of the three operations here:
// ParseRule, Rule.Matches, and Rule.Apply.
package rule

import (
	"strings"

	"github.com/ebenson6295/etld/internal/domain"
)

// Rule is one parsed PSL rule: an ordered sequence of labels, plus
// two flags recording how the rule was written.
//
// Rule is an immutable value type. The zero Rule is not meaningful;
// construct one with ParseRule, New, or FromSerialized.
type Rule struct {
	labels      []domain.Label
	isWildcard  bool
	isException bool
}

// New returns a Rule with the given labels and flags.
//
// New is the canonical constructor; ParseRule and FromSerialized are
// both implemented in terms of it. New does not validate labels: a
// caller that constructs a Rule directly (rather than via ParseRule)
// is responsible for the PSL grammar, including the constraint that
// exception rules do not start with "*".
func New(labels []domain.Label, isWildcard, isException bool) Rule {
	return Rule{
		labels:      labels,
		isWildcard:  isWildcard,
		isException: isException,
	}
}

// Labels returns the rule's labels, in the order they were parsed. A
// wildcard rule retains "*" as Labels()[0].
func (r Rule) Labels() []domain.Label { return r.labels }

// Len returns the number of labels in the rule.
func (r Rule) Len() int { return len(r.labels) }

// IsWildcard reports whether the rule's leftmost label is "*".
func (r Rule) IsWildcard() bool { return r.isWildcard }

// IsException reports whether the rule's source text began with "!".
func (r Rule) IsException() bool { return r.isException }

// Equal reports whether r and s have the same labels and flags.
func (r Rule) Equal(s Rule) bool {
	if r.isWildcard != s.isWildcard || r.isException != s.isException {
		return false
	}
	if len(r.labels) != len(s.labels) {
		return false
	}
	for i := range r.labels {
		if !r.labels[i].Equal(s.labels[i]) {
			return false
		}
	}
	return true
}

// String renders the rule back to PSL source form: labels dot-joined,
// with a leading "!" for exception rules. Wildcard rules already
// carry their "*" as the leftmost label, so no special-casing is
// needed for them.
func (r Rule) String() string {
	var b strings.Builder
	if r.isException {
		b.WriteByte('!')
	}
	for i, l := range r.labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// Matches reports whether r governs d: d has at least as many labels
// as r, and every label of r matches the label in the corresponding
// right-aligned position of d, either by byte-equality or because the
// rule's label is the wildcard "*".
//
// Matches does not consult IsException; exception status affects
// precedence and segmentation, not the structural match test.
func (r Rule) Matches(d domain.Domain) bool {
	n, m := d.Len(), len(r.labels)
	if m > n {
		return false
	}
	for i := 0; i < m; i++ {
		ruleLabel := r.labels[m-1-i]
		domainLabel := d.Label(n - 1 - i)
		if ruleLabel == "*" {
			continue
		}
		if ruleLabel != domainLabel {
			return false
		}
	}
	return true
}

// Info is the result of applying a matching Rule to a Domain: the
// three dot-joined segments that, concatenated in the order
// subdomain.domain.tld (omitting empty segments), reproduce the
// original domain string.
type Info struct {
	TLD       string
	Domain    string
	Subdomain string
}

// Apply segments d according to r, assuming r.Matches(d).
//
// Apply does not itself verify the match; calling it with a
// non-matching Rule produces a meaningless but non-panicking result
// as long as rule length (less one, for exceptions) does not exceed
// d.Len(). An exception rule with exactly one label yields an
// empty-string TLD; this is a documented degenerate case rather than
// an error, since no such rule occurs in real PSL data.
func (r Rule) Apply(d domain.Domain) Info {
	ruleLen := len(r.labels)
	if r.isException {
		ruleLen--
	}

	tldLen := ruleLen
	domainLen := 0
	if tldLen != d.Len() {
		domainLen = 1
	}
	subdomainLen := d.Len() - tldLen - domainLen

	var sub, reg, tld []string
	labels := d.Labels()
	for i, l := range labels {
		switch {
		case i < subdomainLen:
			sub = append(sub, l.String())
		case i < subdomainLen+domainLen:
			reg = append(reg, l.String())
		default:
			tld = append(tld, l.String())
		}
	}

	return Info{
		TLD:       strings.Join(tld, "."),
		Domain:    strings.Join(reg, "."),
		Subdomain: strings.Join(sub, "."),
	}
}
