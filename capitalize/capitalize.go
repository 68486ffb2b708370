// Package capitalize implements the capitalizable-position policy (§4.F).
package capitalize

import (
	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/lattice"
)

// IsCapitalizable reports whether position i is a capitalizable position,
// per §4.F: it is the first non-wall position of the sentence, or the
// preceding committed slot's first alternative is "." or ":" or a bullet,
// or the token landing at i was itself preceded by a discarded quote.
//
// firstRealIndex is the index of the first non-wall slot (0 if the
// dictionary defines no left wall, 1 if it does and the driver issued it)
// -- the sentence driver (§4.G), which decides whether to issue a left
// wall, is in the best position to supply this. postQuote is the
// quote-separator state for the token at i; the caller supplies it
// directly rather than this function reading a committed slot, since the
// policy is also consulted by the driver before slot i has been
// committed (§4.D's capitalization-aware retry runs mid-separate_word).
func IsCapitalizable(sent *lattice.Sentence, table *affix.Table, i, firstRealIndex int, postQuote bool) bool {
	if i == firstRealIndex {
		return true
	}
	if i <= 0 {
		return false
	}
	if postQuote {
		return true
	}
	if i > sent.Length() {
		return false
	}

	prev := sent.Slot(i - 1)
	if len(prev.Alternatives) == 0 {
		return false
	}
	first := sent.Interner().Value(prev.Alternatives[0])
	if first == "." || first == ":" {
		return true
	}
	return classify.IsBulletStr(first, table)
}
