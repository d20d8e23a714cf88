package matcher_test

import (
	"testing"

	"github.com/ebenson6295/etld/internal/domain"
	"github.com/ebenson6295/etld/internal/matcher"
	"github.com/ebenson6295/etld/internal/rule"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) rule.Rule {
	t.Helper()
	r, err := rule.ParseRule(s)
	if err != nil {
		t.Fatalf("ParseRule(%q): %v", s, err)
	}
	return r
}

func newMatcher(t *testing.T, rules ...string) *matcher.Matcher {
	t.Helper()
	var rs []rule.Rule
	for _, r := range rules {
		rs = append(rs, mustParse(t, r))
	}
	return matcher.New(rs)
}

// TestMatchScenarios reproduces the end-to-end scenarios from the
// design's testable properties section.
func TestMatchScenarios(t *testing.T) {
	tests := []struct {
		name   string
		rules  []string
		domain string
		want   rule.Info
	}{
		{
			name:   "simple com",
			rules:  []string{"com"},
			domain: "www.google.com",
			want:   rule.Info{TLD: "com", Domain: "google", Subdomain: "www"},
		},
		{
			name:   "multi-label tld",
			rules:  []string{"co.uk"},
			domain: "google.co.uk",
			want:   rule.Info{TLD: "co.uk", Domain: "google", Subdomain: ""},
		},
		{
			name:   "wildcard with exception",
			rules:  []string{"*.kobe.jp", "!city.kobe.jp"},
			domain: "www.city.kobe.jp",
			want:   rule.Info{TLD: "kobe.jp", Domain: "city", Subdomain: "www"},
		},
		{
			name:   "wildcard no exception",
			rules:  []string{"*.jp"},
			domain: "pete.shoes.example.jp",
			want:   rule.Info{TLD: "example.jp", Domain: "shoes", Subdomain: "pete"},
		},
		{
			name:   "unicode labels",
			rules:  []string{"公司.cn"},
			domain: "食狮.公司.cn",
			want:   rule.Info{TLD: "公司.cn", Domain: "食狮", Subdomain: ""},
		},
		{
			name:   "implicit fallback",
			rules:  nil,
			domain: "horse.shoes",
			want:   rule.Info{TLD: "shoes", Domain: "horse", Subdomain: ""},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newMatcher(t, tc.rules...)
			got := m.MatchString(tc.domain)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Match(%q) mismatch (-want +got):\n%s", tc.domain, diff)
			}
		})
	}
}

// TestExceptionPrecedence verifies testable property 7: an exception
// match wins regardless of label counts, even against a longer
// non-exception rule.
func TestExceptionPrecedence(t *testing.T) {
	m := newMatcher(t, "a.b.c.d", "!b.c.d")
	got := m.MatchString("a.b.c.d")
	want := rule.Info{TLD: "c.d", Domain: "b", Subdomain: "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
}

// TestFallbackTLD verifies testable property 4: absent any explicit
// match, the TLD is the domain's rightmost label.
func TestFallbackTLD(t *testing.T) {
	m := newMatcher(t, "com")
	got := m.MatchString("example.zz")
	if got.TLD != "zz" {
		t.Errorf("Match(%q).TLD = %q, want %q", "example.zz", got.TLD, "zz")
	}
}

func TestMatchIsTotal(t *testing.T) {
	// Property 3: Match never fails to produce a result, even for a
	// single-label domain against an empty rule set.
	m := newMatcher(t)
	got := m.Match(domain.Parse("zz"))
	want := rule.Info{TLD: "zz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializedRoundTrip(t *testing.T) {
	r := mustParse(t, "*.kobe.jp")
	m := matcher.NewFromSerialized([]rule.Serialized{r.ToSerialized()})
	got := m.MatchString("www.city.kobe.jp")
	want := rule.Info{TLD: "city.kobe.jp", Domain: "www", Subdomain: ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
}
