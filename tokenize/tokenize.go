// Package tokenize implements the sentence driver (§4.G): it scans a raw
// input string into whitespace/quote-separated raw tokens and orchestrates
// the affix stripper, morphological splitter, spell expander, and
// capitalization policy over each one, then runs the expression builder
// over the finished lattice.
package tokenize

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/capitalize"
	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/expr"
	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/lattice"
	"github.com/linkgrammar/tokenizer/morph"
	"github.com/linkgrammar/tokenizer/reporter"
	"github.com/linkgrammar/tokenizer/source"
	"github.com/linkgrammar/tokenizer/spell"
	"github.com/linkgrammar/tokenizer/spellexpand"
	"github.com/linkgrammar/tokenizer/stripper"
)

// Options mirrors the configuration named in §6.
type Options struct {
	UseSpellGuess     bool
	DisplayMorphology bool
	NoSuffixes        bool
	// ParallelRegex implements the "parallel-regex"/"parallels-regex"
	// debug toggle (both spellings accepted by the config layer, §9 Open
	// Questions): try a regex match even for words already recognized by
	// another path.
	ParallelRegex   bool
	UseUnknownWord  bool
	MaxSpellGuesses int
}

// Tokenizer holds the read-only collaborators and options for one
// language/configuration; it is safe to reuse (and share read-only state)
// across many Tokenize calls, per §5's concurrency model.
type Tokenizer struct {
	interner *intern.Table
	dict     dict.Dictionary
	table    *affix.Table
	oracle   spell.Oracle
	opts     Options
	log      *logrus.Entry
	rep      reporter.Reporter
}

// New creates a Tokenizer. rep receives UTF-8 decode errors as they're
// found; pass nil for the default reporter, which aborts on the first one.
func New(interner *intern.Table, d dict.Dictionary, table *affix.Table, oracle spell.Oracle, opts Options, log *logrus.Entry, rep reporter.Reporter) *Tokenizer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Tokenizer{interner: interner, dict: d, table: table, oracle: oracle, opts: opts, log: log, rep: rep}
}

// Tokenize runs the sentence driver over raw, per §4.G.
func (t *Tokenizer) Tokenize(raw string) (*lattice.Sentence, error) {
	markers := lattice.Markers{
		InfixMark:     t.table.InfixMark,
		SubscriptMark: t.table.SubscriptMark,
		NoInfixMark:   t.opts.NoSuffixes,
		EmptyWord:     t.table.EmptyWord,
		LeftWall:      t.table.LeftWall,
		RightWall:     t.table.RightWall,
		MaxWordLen:    t.table.MaxWordLen,
	}
	sent := lattice.New(t.interner, markers, t.log)
	tracker := source.NewTracker(raw)
	handler := reporter.NewHandler(t.rep)

	firstRealIndex := 0
	if t.table.LeftWall != "" {
		sent.IssueSentenceWord(t.table.LeftWall, false)
		firstRealIndex = 1
	}

	quoteFound := false
	i := 0
	for i < len(raw) {
		tracker.AddCodePoint(i)
		r, size := utf8.DecodeRuneInString(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			if err := handler.HandleErrorf(tracker.Pos(i), "invalid UTF-8 input (current locale)"); err != nil {
				return nil, err
			}
			i++
			continue
		}
		switch {
		case classify.IsSpace(r):
			i += size
			continue
		case classify.IsQuote(r, t.table):
			quoteFound = true
			i += size
			continue
		}

		wordStart := i
		for i < len(raw) {
			tracker.AddCodePoint(i)
			r2, size2 := utf8.DecodeRuneInString(raw[i:])
			if r2 == utf8.RuneError && size2 <= 1 {
				if err := handler.HandleErrorf(tracker.Pos(i), "invalid UTF-8 input (current locale)"); err != nil {
					return nil, err
				}
				i++
				continue
			}
			if classify.IsSpace(r2) || classify.IsQuote(r2, t.table) {
				break
			}
			i += size2
		}

		t.separateWord(sent, raw[wordStart:i], quoteFound, firstRealIndex)
		quoteFound = false
	}

	if err := handler.Error(); err != nil {
		return nil, err
	}

	if t.table.RightWall != "" {
		sent.IssueSentenceWord(t.table.RightWall, false)
	}

	builder := expr.New(t.dict, t.table, expr.Options{
		UseUnknownWord:    t.opts.UseUnknownWord,
		DisplayMorphology: t.opts.DisplayMorphology,
	})
	builder.Build(sent, firstRealIndex)

	return sent, nil
}

// separateWord is §4.G's "separate_word" orchestration for one raw token.
func (t *Tokenizer) separateWord(sent *lattice.Sentence, rawToken string, quoteFound bool, firstRealIndex int) {
	word := truncateWord(rawToken, t.table.MaxWordLen)
	wordIsInDict := t.dict.FindWord(word)

	core := word
	var rStripped []string
	if !wordIsInDict {
		remaining, consumedEntirely := stripper.LeftStrip(sent, t.table, word, quoteFound)
		if consumedEntirely {
			return
		}
		result := stripper.RightStrip(t.dict, t.table, remaining)
		core = result.Core
		if !result.GaveUp {
			rStripped = result.Pieces
		}
	}

	literalInDict := t.dict.Lookup(core)
	splitter := morph.New(t.dict, t.table)
	anySplit := false

	if literalInDict {
		if sent.AddAlternative(nil, []string{core}, nil) {
			anySplit = true
		}
	}

	if splitter.SuffixSplit(sent, core, literalInDict) {
		anySplit = true
	}

	isUpper := classify.IsUpperStart(core)
	capitalizable := capitalize.IsCapitalizable(sent, t.table, sent.Length(), firstRealIndex, quoteFound)

	if isUpper && capitalizable {
		if splitter.SuffixSplit(sent, classify.ToLower(core), false) {
			anySplit = true
		}
	}

	if splitter.MultiPrefixSplit(sent, core) {
		anySplit = true
	}

	// §4.G step 7: upper-case token that hasn't split yet also gets a
	// direct regex-match attempt (plus its lower-cased form, if
	// capitalizable and literal-in-dict). Step 8's separate, more general
	// regex attempt is skipped in that case to avoid emitting the same
	// "<word>[!]" alternative twice.
	regexHandled := false
	if isUpper && !anySplit {
		if _, ok := t.dict.MatchRegex(core); ok {
			regexHandled = true
			if sent.AddAlternative(nil, []string{core + "[!]"}, nil) {
				anySplit = true
			}
			if capitalizable {
				lower := classify.ToLower(core)
				if t.dict.Lookup(lower) {
					if sent.AddAlternative(nil, []string{lower}, nil) {
						anySplit = true
					}
				}
			}
		}
	}

	if !regexHandled && (!anySplit || t.opts.ParallelRegex) {
		if _, ok := t.dict.MatchRegex(core); ok {
			if sent.AddAlternative(nil, []string{core + "[!]"}, nil) {
				anySplit = true
			}
		}
	}

	if !anySplit && t.oracle != nil && t.opts.UseSpellGuess {
		expander := spellexpand.New(t.dict, t.oracle, t.opts.MaxSpellGuesses)
		if expander.Try(sent, core, word, quoteFound) {
			t.emitRStripped(sent, rStripped)
			return
		}
	}

	if sent.PendingCount() == 0 {
		sent.AddAlternative(nil, []string{core}, nil)
	}
	sent.IssueAlternatives(word, quoteFound)

	t.emitRStripped(sent, rStripped)
}

// emitRStripped commits each right-stripped piece as its own single-slot
// token, in the left-to-right order they were recorded in (§4.C, §8
// invariant 6).
func (t *Tokenizer) emitRStripped(sent *lattice.Sentence, pieces []string) {
	for _, p := range pieces {
		sent.IssueSentenceWord(p, false)
	}
}

func truncateWord(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
