package rule

import "github.com/ebenson6295/etld/internal/domain"

// Serialized is the stable, persistable form of a Rule: the triple
// {is_wildcard, is_exception, labels} described in spec §3. It is the
// form a compiled-in rule table generator (cmd/gentable) bakes into a
// binary, bypassing the text parser entirely.
type Serialized struct {
	IsWildcard  bool
	IsException bool
	Labels      []domain.Label
}

// ToSerialized returns r in its persistable form.
func (r Rule) ToSerialized() Serialized {
	return Serialized{
		IsWildcard:  r.isWildcard,
		IsException: r.isException,
		Labels:      r.labels,
	}
}

// FromSerialized constructs a Rule from its persistable form. It
// performs no validation: a compiled rule table is trusted input,
// produced by a generator that already validated the source PSL text.
func FromSerialized(s Serialized) Rule {
	return New(s.Labels, s.IsWildcard, s.IsException)
}
