// Package domain provides the label/domain name model shared by the
// rule parser and matcher.
//
// Unlike a general-purpose domain name library, this package performs
// no case folding, no IDNA/Punycode normalization, and no validation
// beyond what is needed to split a string on its label boundaries. It
// is deliberately permissive: callers that need canonicalized,
// registration-valid domain names should normalize before handing a
// string to Parse. That tolerance is what lets Rule parsing (which
// does enforce the PSL grammar) reuse this package for both trusted
// rule text and untrusted query hostnames.
package domain

import "strings"

// Label is a single dot-delimited component of a domain name.
//
// A Label is compared byte-for-byte; Label itself never folds case or
// normalizes Unicode.
type Label string

// String returns l as a string.
func (l Label) String() string { return string(l) }

// Equal reports whether l and m are the same sequence of bytes.
func (l Label) Equal(m Label) bool { return l == m }

// Domain is an ordered sequence of Labels, as read left to right.
//
// For "www.example.com", Labels()[0] is "www" and the last label is
// "com". A Domain is immutable once constructed.
type Domain struct {
	labels []Label
}

// New returns a Domain with the given labels, in left-to-right order.
//
// New does not validate or copy-defend labels beyond what is needed
// to protect Domain's own immutability; callers must not reuse the
// backing array of labels after passing it to New.
func New(labels []Label) Domain {
	return Domain{labels: labels}
}

// Parse splits s on "." and returns the resulting Domain, preserving
// label order.
//
// Parse is permissive: a leading, trailing, or doubled "." produces
// empty-string Labels rather than an error. Domain does not validate
// its own input; the PSL grammar that forbids such inputs is enforced
// by Rule parsing, not here.
func Parse(s string) Domain {
	parts := strings.Split(s, ".")
	labels := make([]Label, len(parts))
	for i, p := range parts {
		labels[i] = Label(p)
	}
	return Domain{labels: labels}
}

// Len returns the number of labels in d.
func (d Domain) Len() int { return len(d.labels) }

// Label returns the label at index i, where i=0 is the leftmost
// label.
//
// Label panics if i is out of range, consistent with normal Go slice
// indexing.
func (d Domain) Label(i int) Label { return d.labels[i] }

// Labels returns the domain's labels, in left-to-right order.
//
// The returned slice is not a defensive copy; callers must not mutate
// it.
func (d Domain) Labels() []Label { return d.labels }

// String renders d by joining its labels with ".", with no leading or
// trailing separator.
func (d Domain) String() string {
	var b strings.Builder
	for i, l := range d.labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(string(l))
	}
	return b.String()
}
