// Package matcher implements the PSL precedence algorithm: given a
// set of rules, decide which one governs a queried domain name and
// segment the domain accordingly.
//
// A Matcher is built once (New or NewFromSerialized) and is
// thereafter read-only. Because all of its component values —
// domain.Domain, rule.Rule, ruleset.RuleSet — are immutable after
// construction, a fully built Matcher is safe to share across
// concurrent readers without any synchronization of its own.
package matcher

import (
	"github.com/ebenson6295/etld/internal/domain"
	"github.com/ebenson6295/etld/internal/rule"
	"github.com/ebenson6295/etld/internal/ruleset"
)

// fallback is the implicit "*" rule applied when no explicit rule
// matches a query. It is synthesized on demand rather than stored in
// the normal rule set, so it can never be confused with an explicit
// rule and never perturbs the longest-match search over real rules.
var fallback = rule.New([]domain.Label{"*"}, true, false)

// Matcher owns two RuleSets — exception rules and everything else —
// and implements the three-tier PSL precedence: an exception match
// always wins, the longest non-exception match wins otherwise, and
// the implicit "*" fallback applies when nothing else matches.
type Matcher struct {
	exceptions *ruleset.RuleSet
	rules      *ruleset.RuleSet
}

// New builds a Matcher from rules, sorting exception rules and normal
// rules into their own sets.
func New(rules []rule.Rule) *Matcher {
	m := &Matcher{
		exceptions: ruleset.New(nil),
		rules:      ruleset.New(nil),
	}
	for _, r := range rules {
		if r.IsException() {
			m.exceptions.Add(r)
		} else {
			m.rules.Add(r)
		}
	}
	return m
}

// NewFromSerialized builds a Matcher directly from a compiled rule
// table, without parsing PSL text. This is the path a code generator
// uses to bake a Matcher's rules into a binary.
func NewFromSerialized(serialized []rule.Serialized) *Matcher {
	rules := make([]rule.Rule, len(serialized))
	for i, s := range serialized {
		rules[i] = rule.FromSerialized(s)
	}
	return New(rules)
}

// Match decides which rule governs domain and returns its
// segmentation.
//
// Match is total: it always returns a rule.Info, because the implicit
// "*" fallback guarantees some rule always applies.
//
//  1. If any exception rule matches, the longest-matching exception
//     wins outright, regardless of what normal rules also match.
//  2. Otherwise, the longest-matching normal rule wins.
//  3. Otherwise, the implicit "*" rule applies, making the domain's
//     rightmost label its TLD.
func (m *Matcher) Match(d domain.Domain) rule.Info {
	if r, ok := m.exceptions.Match(d); ok {
		return r.Apply(d)
	}
	if r, ok := m.rules.Match(d); ok {
		return r.Apply(d)
	}
	return fallback.Apply(d)
}

// MatchString is a convenience wrapper that parses s as a Domain
// before matching. Malformed input is not rejected: it simply
// produces whatever segmentation falls out of the labels Parse
// extracts.
func (m *Matcher) MatchString(s string) rule.Info {
	return m.Match(domain.Parse(s))
}
