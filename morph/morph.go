// Package morph implements the morphological splitter (§4.D): suffix
// split, multi-prefix (agglutinative) split, and the prefix-within-suffix
// lookup, all dictionary-gated.
package morph

import (
	"strings"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/lattice"
)

// Splitter holds the read-only collaborators every split needs.
type Splitter struct {
	dict  dict.Dictionary
	table *affix.Table
}

// New creates a Splitter over the given dictionary and affix table.
func New(d dict.Dictionary, table *affix.Table) *Splitter {
	return &Splitter{dict: d, table: table}
}

// SuffixSplit iterates SUF, including an implicit empty-suffix sentinel as
// the final candidate (which reduces to "prefix only"), per §4.D "Suffix
// split". Returns true iff any dictionary-confirmed split succeeded.
//
// skipBareWord suppresses the direct dict-check for the empty-suffix
// candidate, whose stem always equals word itself: the caller passes true
// when it already tested word literally (so the bare-word hit would only
// re-emit what's already on the slot), and false when word is some other
// form (e.g. lower-cased) the caller hasn't already checked.
func (m *Splitter) SuffixSplit(sent *lattice.Sentence, word string, skipBareWord bool) bool {
	suf, _ := m.table.Strings(affix.SUF)
	candidates := make([]string, 0, len(suf)+1)
	candidates = append(candidates, suf...)
	candidates = append(candidates, "") // implicit empty suffix

	succeeded := false
	for _, suffix := range candidates {
		if suffix != "" && !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := word
		if suffix != "" {
			stem = word[:len(word)-len(suffix)]
		}
		if stem == "" {
			continue
		}

		if !(suffix == "" && skipBareWord) && m.dict.Lookup(stem) {
			if m.addAlternativeWithSubscr(sent, stem, suffix) {
				succeeded = true
			}
		}

		if m.prefixWithinSuffix(sent, stem, suffix) {
			succeeded = true
		}
	}
	return succeeded
}

// prefixWithinSuffix is the "also try every PRE prefix" step run inside the
// suffix loop body: if the remaining middle, after stripping a PRE prefix
// and the current suffix length, is a literal dictionary word, emit
// (prefix, middle, suffix).
func (m *Splitter) prefixWithinSuffix(sent *lattice.Sentence, stem, suffix string) bool {
	pre, _ := m.table.Strings(affix.PRE)
	succeeded := false
	for _, prefix := range pre {
		if prefix == "" || !strings.HasPrefix(stem, prefix) {
			continue
		}
		middle := stem[len(prefix):]
		if middle == "" {
			continue
		}
		if !m.dict.Lookup(middle) {
			continue
		}
		if sent.AddAlternative([]string{prefix}, []string{middle}, suffixSlice(suffix)) {
			succeeded = true
		}
	}
	return succeeded
}

// addAlternativeWithSubscr implements add_alternative_with_subscr: when
// STEMSUBSCR is empty, emit (stem, suffix) directly; otherwise, for each
// subscript, test stem||subscript with a literal-only lookup and emit a hit
// for each. Regex lookups never apply to a stem (§4.D, §9 "dictionary is
// the single source of truth").
func (m *Splitter) addAlternativeWithSubscr(sent *lattice.Sentence, stem, suffix string) bool {
	stemsubscr, _ := m.table.Strings(affix.STEMSUBSCR)
	sufSlice := suffixSlice(suffix)

	if len(stemsubscr) == 0 {
		return sent.AddAlternative(nil, []string{stem}, sufSlice)
	}

	succeeded := false
	for _, ss := range stemsubscr {
		candidate := stem + ss
		if !m.dict.Lookup(candidate) {
			continue
		}
		if sent.AddAlternative(nil, []string{candidate}, sufSlice) {
			succeeded = true
		}
	}
	return succeeded
}

// MultiPrefixSplit is the agglutinative (e.g. Hebrew) multi-prefix split of
// §4.D: repeatedly peel MPRE subwords from the left, bounded at
// Table.MaxMultiPrefix prefixes, with a subword usable at most once per
// split. Returns true iff any dictionary-confirmed peel (or full-consumption
// peel) succeeded.
func (m *Splitter) MultiPrefixSplit(sent *lattice.Sentence, word string) bool {
	seen := make(map[string]bool)
	return m.peel(sent, word, nil, seen, 0)
}

func (m *Splitter) peel(sent *lattice.Sentence, residue string, stack []string, seen map[string]bool, depth int) bool {
	if depth >= m.table.MaxMultiPrefix {
		return false
	}

	succeeded := false
	m.table.EachMPRE(func(p string) bool {
		if p == "" || seen[p] || !strings.HasPrefix(residue, p) {
			return true
		}
		props, _ := m.table.MPREProps(p)
		if props.FirstPositionOnly && depth != 0 {
			return true
		}

		newResidue := residue[len(p):]
		newStack := append(append([]string{}, stack...), p)

		seen[p] = true
		if m.tryPeel(sent, newResidue, newStack) {
			succeeded = true
		}
		if m.peel(sent, newResidue, newStack, seen, depth+1) {
			succeeded = true
		}

		// Double-leading-character disambiguation: if the residue
		// actually held two consecutive copies of this subword, also
		// consider that both copies together stand for a single
		// morpheme and try the doubly-stripped residue directly.
		if props.DoubleLeading && strings.HasPrefix(newResidue, p) {
			doubleResidue := newResidue[len(p):]
			if m.tryPeel(sent, doubleResidue, newStack) {
				succeeded = true
			}
			if m.peel(sent, doubleResidue, newStack, seen, depth+1) {
				succeeded = true
			}
		}
		delete(seen, p)

		return true
	})
	return succeeded
}

// tryPeel emits the (prefix_stack, residue) alternative for one peel point:
// full consumption of the token emits (prefix_stack, ∅); otherwise the
// residue must be dictionary-confirmed.
func (m *Splitter) tryPeel(sent *lattice.Sentence, residue string, stack []string) bool {
	if residue == "" {
		return sent.AddAlternative(stack, nil, nil)
	}
	if !m.dict.Lookup(residue) {
		return false
	}
	return sent.AddAlternative(stack, []string{residue}, nil)
}

func suffixSlice(suffix string) []string {
	if suffix == "" {
		return nil
	}
	return []string{suffix}
}
