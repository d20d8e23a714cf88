// Package ruleset implements an unordered collection of rules that
// supports finding the longest rule that matches a given domain.
package ruleset

import (
	"github.com/ebenson6295/etld/internal/domain"
	"github.com/ebenson6295/etld/internal/rule"
)

// RuleSet is a multiset of Rules. It performs no deduplication, and
// iteration order is unspecified: if two rules of equal length both
// match a query, Match returns whichever was added first, but callers
// must not depend on that.
type RuleSet struct {
	rules []rule.Rule
}

// New returns a RuleSet containing rules.
//
// New does not copy-defend rules; callers must not mutate the slice
// after passing it to New.
func New(rules []rule.Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Add appends rule to the set.
func (s *RuleSet) Add(r rule.Rule) {
	s.rules = append(s.rules, r)
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int { return len(s.rules) }

// Rules returns the set's rules. The returned slice is not a
// defensive copy; callers must not mutate it.
func (s *RuleSet) Rules() []rule.Rule { return s.rules }

// Match returns the longest rule in s that matches d.
//
// found is false if no rule in s matches d, in which case the
// returned Rule is the zero value and must not be used.
func (s *RuleSet) Match(d domain.Domain) (r rule.Rule, found bool) {
	longest := -1
	for _, candidate := range s.rules {
		if !candidate.Matches(d) {
			continue
		}
		if n := candidate.Len(); n > longest {
			longest = n
			r = candidate
			found = true
		}
	}
	return r, found
}
