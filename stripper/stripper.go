// Package stripper implements the affix stripper (§4.C): left-punctuation
// peeling and right-punctuation/unit peeling over a raw token.
package stripper

import (
	"strings"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/lattice"
)

// LeftStrip iteratively peels LPUNC entries off the front of word,
// committing each as its own single-slot token via
// Sentence.IssueSentenceWord, per §4.C "Left strip". quoteFound is
// attached only to the very first committed piece, matching the raw
// token's own quote-preceding state; later pieces in the same raw token
// were not themselves preceded by a quote.
//
// Returns the remaining text and whether the entire raw token was
// consumed by left-punctuation (in which case the caller must not
// continue processing it as a word).
func LeftStrip(sent *lattice.Sentence, table *affix.Table, word string, quoteFound bool) (remaining string, consumedEntirely bool) {
	lpunc, _ := table.Strings(affix.LPUNC)
	for {
		matched := ""
		for _, entry := range lpunc {
			if entry != "" && strings.HasPrefix(word, entry) {
				matched = entry
				break
			}
		}
		if matched == "" {
			return word, false
		}
		sent.IssueSentenceWord(matched, quoteFound)
		quoteFound = false
		word = word[len(matched):]
		if word == "" {
			return "", true
		}
	}
}

// RightResult is the outcome of RightStrip.
type RightResult struct {
	// Core is the remaining token after any right strips.
	Core string
	// Pieces are the stripped-off punctuation/unit substrings, in
	// original left-to-right order (i.e. the order they appear in the
	// raw token), to be committed after Core per §4.C and the ordering
	// invariant in §8.
	Pieces []string
	// WordIsInDict is true if Core (or the original word, when no
	// stripping occurred) was recognized by the dictionary (literal or
	// regex) during the strip loop, per §4.C step 1.
	WordIsInDict bool
	// GaveUp is true if MAX_STRIP was reached without the loop naturally
	// terminating; per §7, the caller must then treat the whole original
	// word as unitary and unknown, discarding any partial strips.
	GaveUp bool
}

// RightStrip works over a working end-pointer, peeling RPUNC and
// (digit-gated) UNITS entries off the right edge of word, per §4.C
// "Right strip".
//
// The spec describes trying unit strips regardless of whether the token
// started with a digit and then rolling the attempt back at the end if
// it turns out the token didn't start with a digit; this implementation
// collapses that into an upfront gate (never attempt a unit strip unless
// the token started with a digit), which has the identical net effect
// since a unit strip is only ever accepted under that same condition.
//
// At each step both classes are candidates and the longest match wins
// (not a fixed RPUNC-then-UNITS priority): a trailing "." can belong to
// either a bare RPUNC mark or the tail of a longer UNITS entry like
// "ft.", and only considering the longer match first lets a later step
// still find the shorter mark underneath it. This also means nothing
// stops two UNITS entries from peeling back to back (e.g. "sq." then
// "ft." off a run of unit abbreviations); link-grammar's own affix
// tables allow that.
func RightStrip(d dict.Dictionary, table *affix.Table, word string) RightResult {
	startedWithDigit := classify.IsDigitStart(word)
	end := word
	var stripped []string // collected right-to-left (chronological strip order)

	for i := 0; i < table.MaxStrip; i++ {
		if d.FindWord(end) {
			return RightResult{Core: end, Pieces: reverseStrings(stripped), WordIsInDict: true}
		}

		matched, ok := matchRightEntry(table, end, startedWithDigit)
		if !ok {
			return RightResult{Core: end, Pieces: reverseStrings(stripped)}
		}

		end = end[:len(end)-len(matched)]
		stripped = append(stripped, matched)

		if i == table.MaxStrip-1 {
			// Ran the loop MaxStrip times without a natural stop: give up
			// entirely per §7 "MAX_STRIP exceeded".
			return RightResult{Core: word, GaveUp: true}
		}
	}
	return RightResult{Core: end, Pieces: reverseStrings(stripped)}
}

// matchRightEntry finds the longest RPUNC or (digit-gated) UNITS entry
// that is a proper suffix of end.
func matchRightEntry(table *affix.Table, end string, startedWithDigit bool) (matched string, ok bool) {
	rpunc, _ := table.Strings(affix.RPUNC)
	for _, e := range rpunc {
		if e != "" && strings.HasSuffix(end, e) && len(e) < len(end) && len(e) > len(matched) {
			matched, ok = e, true
		}
	}
	if startedWithDigit {
		units, _ := table.Strings(affix.UNITS)
		for _, e := range units {
			if e != "" && strings.HasSuffix(end, e) && len(e) < len(end) && len(e) > len(matched) {
				matched, ok = e, true
			}
		}
	}
	return matched, ok
}

func reverseStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
