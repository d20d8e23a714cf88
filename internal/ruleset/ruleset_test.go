package ruleset_test

import (
	"testing"

	"github.com/ebenson6295/etld/internal/domain"
	"github.com/ebenson6295/etld/internal/rule"
	"github.com/ebenson6295/etld/internal/ruleset"
)

func mustParse(t *testing.T, s string) rule.Rule {
	t.Helper()
	r, err := rule.ParseRule(s)
	if err != nil {
		t.Fatalf("ParseRule(%q): %v", s, err)
	}
	return r
}

func TestMatchLongest(t *testing.T) {
	s := ruleset.New(nil)
	s.Add(mustParse(t, "jp"))
	s.Add(mustParse(t, "kobe.jp"))
	s.Add(mustParse(t, "*.kobe.jp"))

	got, ok := s.Match(domain.Parse("shoes.city.kobe.jp"))
	if !ok {
		t.Fatal("Match returned found=false, want true")
	}
	if got.Len() != 3 {
		t.Errorf("Match returned rule of length %d, want 3 (*.kobe.jp)", got.Len())
	}
}

func TestMatchNone(t *testing.T) {
	s := ruleset.New(nil)
	s.Add(mustParse(t, "co.uk"))

	_, ok := s.Match(domain.Parse("example.com"))
	if ok {
		t.Error("Match returned found=true, want false")
	}
}

func TestLenAndRules(t *testing.T) {
	s := ruleset.New(nil)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s.Add(mustParse(t, "com"))
	s.Add(mustParse(t, "org"))
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if len(s.Rules()) != 2 {
		t.Errorf("len(Rules()) = %d, want 2", len(s.Rules()))
	}
}
