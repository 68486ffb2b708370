// Package spellexpand implements the spell expander (§4.E): run-on split
// and misspelling guesses via an external spell oracle.
package spellexpand

import (
	"strings"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/lattice"
	"github.com/linkgrammar/tokenizer/spell"
)

// SpellGuessTag is appended to a single-word guess that is only in the
// dictionary literally, per §4.E and §6 "Origin tags". The expression
// builder (§4.H) peels this back off.
const SpellGuessTag = "[~]"

// Expander runs the spell expander over one raw token.
type Expander struct {
	dict       dict.Dictionary
	oracle     spell.Oracle
	maxGuesses int
}

// New creates an Expander. maxGuesses <= 0 defaults to
// affix.DefaultMaxSpellGuesses.
func New(d dict.Dictionary, oracle spell.Oracle, maxGuesses int) *Expander {
	if maxGuesses <= 0 {
		maxGuesses = affix.DefaultMaxSpellGuesses
	}
	return &Expander{dict: d, oracle: oracle, maxGuesses: maxGuesses}
}

// Try fires the spell expander for word, per §4.E's firing conditions:
// the oracle must be configured, the token must not be numeric, must not
// look like a proper name (starts upper-case), and nothing else must have
// already succeeded for this token. Try itself checks the first three
// (a nil oracle, a numeric token, an upper-case start all return false
// before the oracle is consulted); the last is the caller's (the sentence
// driver's) responsibility.
//
// unsplitWord is recorded as the committed group's unsplit_word (§3):
// callers pass the original raw token here, which may differ from word
// (the post-strip core actually queried against the oracle).
//
// Returns true and commits the staged group if any guess was emitted.
func (e *Expander) Try(sent *lattice.Sentence, word, unsplitWord string, quoteFound bool) bool {
	if e.oracle == nil {
		return false
	}
	if classify.IsNumber(word) || classify.IsUpperStart(word) {
		return false
	}

	suggestions := e.oracle.Suggest(word)
	emitted := false
	guesses := 0

	for _, suggestion := range suggestions {
		if guesses >= e.maxGuesses {
			break
		}
		guesses++

		if strings.ContainsAny(suggestion, " \t") {
			pieces := strings.Fields(suggestion)
			if len(pieces) < 2 {
				continue
			}
			if sent.AddAlternative(nil, pieces, nil) {
				emitted = true
			}
			continue
		}

		if e.dict.Lookup(suggestion) {
			if sent.AddAlternative(nil, []string{suggestion + SpellGuessTag}, nil) {
				emitted = true
			}
		}
	}

	if !emitted {
		return false
	}
	return sent.IssueAlternatives(unsplitWord, quoteFound)
}
