// Package lattice implements the sentence lattice data model (§3) and the
// alternative buffer (§4.B): the growing, per-position table of
// tokenization alternatives that every other component writes into.
package lattice

import (
	"github.com/sirupsen/logrus"

	"github.com/linkgrammar/tokenizer/classify"
	"github.com/linkgrammar/tokenizer/disjunct"
	"github.com/linkgrammar/tokenizer/internal/arena"
	"github.com/linkgrammar/tokenizer/internal/intern"
)

// WordSlot is one word position in the lattice (§3).
type WordSlot struct {
	// Alternatives is an ordered, nullable-terminated list of interned
	// token strings for this position. "Nullable-terminated" here means
	// short decompositions are padded with the empty-word marker rather
	// than omitted -- see the Invariants in §3.
	Alternatives []intern.ID
	// UnsplitWord is the original raw token that produced this slot's
	// group; only set on the first slot of the group.
	UnsplitWord string
	// FirstUpper is true if any alternative of this group began with an
	// upper-case code point.
	FirstUpper bool
	// PostQuote is true if the raw token was immediately preceded by a
	// discarded quote character.
	PostQuote bool
	// X is the disjunct expression list, one chain per alternative,
	// concatenated by the expression builder (§4.H).
	X disjunct.Chain
}

// role identifies which part of a decomposition a component plays, for
// formatting purposes (§4.B.1).
type role int

const (
	rolePrefix role = iota
	roleStem
	roleSuffix
)

// Sentence is the lattice described in §3, plus the token-group staging
// window ("pending") used by the alternative buffer.
//
// Per the Design Notes (§9), the staging window is modeled as a typed
// pending-group value (pendingGroup) rather than two bare integers hung
// off the sentence.
type Sentence struct {
	interner *intern.Table
	markers  Markers
	slots    arena.Arena[WordSlot]
	length   int

	pending pendingGroup

	log *logrus.Entry
}

// pendingGroup is the "staging window vs. transactional commit" value
// named in the Design Notes: alternatives accumulate here via push, and
// commit publishes the block.
type pendingGroup struct {
	start int // t_start: slot index where the current raw token's alternatives begin
	count int // t_count: how many slots the current raw token has produced so far
}

// New creates an empty sentence lattice.
func New(interner *intern.Table, markers Markers, log *logrus.Entry) *Sentence {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Sentence{interner: interner, markers: markers, log: log}
}

// Interner returns the string-set interner backing this sentence's
// alternatives.
func (s *Sentence) Interner() *intern.Table { return s.interner }

// Markers returns the configured marker set.
func (s *Sentence) Markers() Markers { return s.markers }

// Length is the number of committed slots.
func (s *Sentence) Length() int { return s.length }

// Slot returns the committed slot at position i. Panics if i is out of
// range, since committed slots are never removed or rewritten (§3
// Invariants) -- callers should always bound i by Length().
func (s *Sentence) Slot(i int) *WordSlot {
	return s.slots.At(arena.Untyped(i + 1))
}

// PendingStart is the slot index where the currently-staged token group
// begins (t_start); equal to Length() whenever no group is staged.
func (s *Sentence) PendingStart() int { return s.pending.start }

// PendingCount is how many slots the currently-staged token group has
// produced so far (t_count).
func (s *Sentence) PendingCount() int { return s.pending.count }

// newSlot appends a fresh, empty slot to the arena-backed table and
// returns its absolute index.
func (s *Sentence) newSlot() int {
	idx := s.slots.Len()
	s.slots.New(WordSlot{})
	return idx
}

func (s *Sentence) internAlt(text string) intern.ID {
	return s.interner.Intern(text)
}

func (s *Sentence) altString(id intern.ID) string {
	return s.interner.Value(id)
}

// AddAlternative appends one decomposition to the currently-staged token
// group, per §4.B. prefix, stem, and suffix give the respective
// components in role order (prefixes, then the stem, then suffixes); per
// normal use len(stem) is 1, and 0 is only allowed when the entire prefix
// list stands alone (multi-prefix exhausting the whole token, §4.D).
//
// Returns false (and logs at debug level) if the leading component would
// be the empty string -- §4.B.3 and §7's "Empty alternative components"
// rule.
func (s *Sentence) AddAlternative(prefix []string, stem []string, suffix []string) bool {
	if len(prefix) > 0 && prefix[0] == "" {
		s.log.Debug("lattice: refusing decomposition with empty leading prefix component")
		return false
	}
	if len(prefix) == 0 && len(stem) > 0 && stem[0] == "" {
		s.log.Debug("lattice: refusing decomposition with empty leading stem component")
		return false
	}

	type component struct {
		role role
		text string
	}
	components := make([]component, 0, len(prefix)+len(stem)+len(suffix))
	for _, p := range prefix {
		components = append(components, component{rolePrefix, p})
	}
	for _, st := range stem {
		components = append(components, component{roleStem, st})
	}
	for _, suf := range suffix {
		components = append(components, component{roleSuffix, suf})
	}

	ai := 0
	for _, c := range components {
		formatted := s.format(c.role, c.text)
		slotIdx := s.pending.start + ai

		if ai < s.pending.count {
			slot := s.slots.At(arena.Untyped(slotIdx + 1))
			slot.Alternatives = append(slot.Alternatives, s.internAlt(formatted))
		} else {
			numalt := 0
			if s.pending.count > 0 {
				numalt = len(s.slots.At(arena.Untyped(s.pending.start+1)).Alternatives)
			}
			newIdx := s.newSlot()
			if newIdx != slotIdx {
				// The arena only ever grows by one slot at a time from
				// here, so this would indicate a staging-window bug.
				panic("lattice: pending group is not contiguous with the slot table")
			}
			slot := s.slots.At(arena.Untyped(newIdx + 1))
			for i := 0; i < numalt-1; i++ {
				slot.Alternatives = append(slot.Alternatives, s.internAlt(s.markers.EmptyWord))
			}
			slot.Alternatives = append(slot.Alternatives, s.internAlt(formatted))
			s.pending.count++
		}

		if classify.IsUpperStart(formatted) {
			first := s.slots.At(arena.Untyped(s.pending.start + 1))
			first.FirstUpper = true
		}

		ai++
	}

	// Balance: any slot in this group beyond what this decomposition
	// touched gets an empty-word marker, so shorter decompositions stay
	// balanced with longer, earlier ones (§4.B.1 step 2).
	for slotIdx := s.pending.start + ai; slotIdx < s.pending.start+s.pending.count; slotIdx++ {
		slot := s.slots.At(arena.Untyped(slotIdx + 1))
		slot.Alternatives = append(slot.Alternatives, s.internAlt(s.markers.EmptyWord))
	}

	return true
}

// format implements §4.B.1's per-role formatting rules, then truncates to
// MAX_WORD.
func (s *Sentence) format(r role, text string) string {
	switch r {
	case roleStem:
		return s.markers.truncate(text)
	case rolePrefix:
		if s.markers.InfixMark == 0 {
			return s.markers.truncate(text)
		}
		return s.markers.truncate(text + string(s.markers.InfixMark))
	case roleSuffix:
		if s.markers.NoInfixMark || s.markers.InfixMark == 0 {
			return s.markers.truncate(text)
		}
		if !classify.IsAlphaStart(text) {
			return s.markers.truncate(text)
		}
		return s.markers.truncate(string(s.markers.InfixMark) + text)
	default:
		return s.markers.truncate(text)
	}
}

// IssueAlternatives commits the staged group (§4.B.2): records raw as
// UnsplitWord on the group's first slot, records quoteFound as
// PostQuote, advances Length by the group's slot count, and resets the
// staging window. Returns false and does nothing if the group is empty,
// i.e. "issue_alternatives on an empty staged group is a no-op" (§8 Laws).
func (s *Sentence) IssueAlternatives(raw string, quoteFound bool) bool {
	if s.pending.count == 0 {
		return false
	}
	first := s.slots.At(arena.Untyped(s.pending.start + 1))
	first.UnsplitWord = raw
	first.PostQuote = quoteFound

	s.length += s.pending.count
	s.pending = pendingGroup{start: s.length}
	return true
}

// IssueSentenceWord stages word as a single-slot, single-alternative
// decomposition and immediately commits it -- the add_alternative +
// issue_alternatives pairing §4.C calls "issue_sentence_word".
func (s *Sentence) IssueSentenceWord(word string, quoteFound bool) bool {
	if !s.AddAlternative(nil, []string{word}, nil) {
		return false
	}
	return s.IssueAlternatives(word, quoteFound)
}
