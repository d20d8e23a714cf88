package matcher

import (
	"sync"

	"github.com/ebenson6295/etld/internal/rule"
)

// compiledRules is the process-wide compiled-in rule table consumed
// by Shared. It starts empty; a real deployment overwrites it (for
// example from an init function in a generated file produced by
// cmd/gentable) before the first call to Shared.
var compiledRules []rule.Serialized

// SetCompiledRules installs the rule table that Shared will build its
// singleton Matcher from.
//
// SetCompiledRules must be called, if at all, before the first call
// to Shared: once the singleton has been built, later calls have no
// effect on the already-published Matcher.
func SetCompiledRules(rules []rule.Serialized) {
	compiledRules = rules
}

// shared is the lazily-built, process-lifetime singleton Matcher.
//
// The original C++ implementation (etld/shared_matcher.h) uses a
// Meyers singleton: a static local whose constructor runs on
// first access and is guaranteed by the language to run at most once.
// sync.OnceValue is Go's equivalent one-shot lazy-build-and-publish
// primitive.
var shared = sync.OnceValue(func() *Matcher {
	return NewFromSerialized(compiledRules)
})

// Shared returns the process-wide Matcher built from the compiled-in
// rule table installed by SetCompiledRules.
//
// The returned Matcher is built once, on first call, and is safe to
// share across goroutines thereafter. There is no teardown: the
// Matcher lives for the process lifetime.
func Shared() *Matcher {
	return shared()
}
