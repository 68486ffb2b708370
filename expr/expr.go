// Package expr implements the expression builder (§4.H): after tokenization
// is final, visit each slot's alternatives and attach disjunct expressions,
// tagging regex/spell/unknown origins.
package expr

import (
	"fmt"
	"strings"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/capitalize"
	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/disjunct"
	"github.com/linkgrammar/tokenizer/lattice"
)

// Tag strings appended to a disjunct's rewritten word, per §6 "Origin
// tags". UnknownTag is also used, appended to the dictionary's
// UNKNOWN_WORD expressions.
const (
	SpellTag   = "[~]"
	UnknownTag = "[?]"
)

// Options mirrors the configuration named in §6 that affects expression
// building specifically.
type Options struct {
	// UseUnknownWord gates falling back to the UNKNOWN_WORD entry.
	UseUnknownWord bool
	// DisplayMorphology controls whether a regex's name is shown inside
	// the "[!...]" tag, or the tag is emitted bare as "[!]".
	DisplayMorphology bool
}

// Builder attaches disjunct expressions to a finished sentence lattice.
type Builder struct {
	dict  dict.Dictionary
	table *affix.Table
	opts  Options
}

// New creates a Builder over the given collaborators.
func New(d dict.Dictionary, table *affix.Table, opts Options) *Builder {
	return &Builder{dict: d, table: table, opts: opts}
}

// Build visits every slot of sent in order and populates its X field.
// firstRealIndex is the index of the first non-wall slot, as required by
// the capitalizable-position policy (§4.F).
func (b *Builder) Build(sent *lattice.Sentence, firstRealIndex int) {
	for i := 0; i < sent.Length(); i++ {
		b.buildSlot(sent, i, firstRealIndex)
	}
}

func (b *Builder) buildSlot(sent *lattice.Sentence, i, firstRealIndex int) {
	slot := sent.Slot(i)
	var chains []disjunct.Chain
	for k := range slot.Alternatives {
		chain := b.buildAlternative(sent, i, k, firstRealIndex)
		chains = append(chains, chain)
	}
	slot.X = disjunct.Catenate(chains...)
}

// buildAlternative is the per-alternative lookup-order-plus-capitalization
// logic of §4.H. k indexes slot.Alternatives; buildAlternative may
// overwrite that entry in place when a capitalized surface form is
// replaced by its lower-cased form.
func (b *Builder) buildAlternative(sent *lattice.Sentence, i, k, firstRealIndex int) disjunct.Chain {
	slot := sent.Slot(i)
	origword := sent.Interner().Value(slot.Alternatives[k])
	spellTagged := false
	regexTagged := false

	switch {
	case strings.HasSuffix(origword, SpellTag):
		spellTagged = true
		origword = strings.TrimSuffix(origword, SpellTag)
	case regexTagStart(origword) >= 0:
		regexTagged = true
		start := regexTagStart(origword)
		origword = origword[:start]
	}

	var chain disjunct.Chain
	var tag string

	switch {
	case !regexTagged && b.dict.Lookup(origword):
		chain = b.dict.BuildExpressions(origword)

	case func() bool {
		name, ok := b.dict.MatchRegex(origword)
		return ok && b.dict.Lookup(name)
	}():
		name, _ := b.dict.MatchRegex(origword)
		chain = b.dict.BuildExpressions(name)
		if b.opts.DisplayMorphology {
			tag = fmt.Sprintf("[!%s]", name)
		} else {
			tag = "[!]"
		}

	case b.opts.UseUnknownWord && b.table.Unknown != "" && b.dict.HasUnknownWord():
		chain = b.dict.BuildExpressions(b.table.Unknown)
		tag = UnknownTag

	default:
		// Affix-table pieces (LPUNC/RPUNC/UNITS/SUF/MPRE strings, and any
		// other stripped fragment) are committed as their own slots without
		// ever being registered as literal dictionary entries: in real
		// link-grammar dictionaries the affix-table strings are themselves
		// ordinary dictionary entries, so a lookup miss here just means this
		// particular table carries no explicit connectors for the piece.
		// Passing it through as a bare, connector-less expression lets it
		// take its slot in the lattice without asserting a connector
		// structure that doesn't exist.
		chain = disjunct.Chain{{Word: origword}}
	}

	if spellTagged {
		tag = SpellTag
	}
	if tag != "" {
		chain = rewriteTag(chain, tag)
	}

	if classify.IsUpperStart(origword) && capitalize.IsCapitalizable(sent, b.table, i, firstRealIndex, slot.PostQuote) {
		lower := classify.ToLower(origword)
		if lower != origword && b.dict.Lookup(lower) {
			lowerChain := b.dict.BuildExpressions(lower)
			_, matchedRegex := b.dict.MatchRegex(origword)
			if matchedRegex || b.dict.IsCommonEntity(lower) {
				chain = disjunct.Catenate(chain, lowerChain)
			} else {
				chain = lowerChain
				slot.Alternatives[k] = sent.Interner().Intern(lower)
			}
		}
	}

	return chain
}

// regexTagStart returns the index of a trailing "[!...]" tag's opening
// bracket, or -1 if s does not end with one.
func regexTagStart(s string) int {
	if !strings.HasSuffix(s, "]") {
		return -1
	}
	idx := strings.LastIndex(s, "[!")
	if idx < 0 {
		return -1
	}
	return idx
}

// rewriteTag appends tag to every disjunct's word string, per the
// "word[mark_char + regex_name?] + original_subscript" rewrite convention
// of §4.H. Subscript is carried in a dedicated Expr field rather than
// embedded in the string, so preserving it is simply leaving it untouched.
func rewriteTag(chain disjunct.Chain, tag string) disjunct.Chain {
	out := make(disjunct.Chain, len(chain))
	for i, e := range chain {
		out[i] = disjunct.Expr{Word: e.Word + tag, Subscript: e.Subscript}
	}
	return out
}
