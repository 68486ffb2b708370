package dict

import "github.com/linkgrammar/tokenizer/disjunct"

// Entry is one literal dictionary entry: its built expressions and whether
// it is a "common entity" (see the GLOSSARY).
type Entry struct {
	Expressions disjunct.Chain
	Common      bool
}

// MapDictionary is a simple in-memory Dictionary backed by a map of
// literal entries plus an optional RegexTable, suitable for tests and the
// CLI's default configuration.
type MapDictionary struct {
	entries     map[string]Entry
	regexes     *RegexTable
	unknownWord string
	hasUnknown  bool
}

// NewMapDictionary creates an empty MapDictionary. unknownWord names the
// UNKNOWN_WORD entry's key, if any (see §7 and §4.H step 3); pass "" if
// the language has none.
func NewMapDictionary(unknownWord string) *MapDictionary {
	return &MapDictionary{
		entries:     make(map[string]Entry),
		unknownWord: unknownWord,
	}
}

// Add registers a literal dictionary entry.
func (d *MapDictionary) Add(word string, entry Entry) {
	d.entries[word] = entry
	if word == d.unknownWord {
		d.hasUnknown = true
	}
}

// SetRegexTable installs the regex oracle used by FindWord and MatchRegex.
func (d *MapDictionary) SetRegexTable(t *RegexTable) {
	d.regexes = t
}

func (d *MapDictionary) Lookup(word string) bool {
	_, ok := d.entries[word]
	return ok
}

func (d *MapDictionary) FindWord(word string) bool {
	if d.Lookup(word) {
		return true
	}
	if d.regexes == nil {
		return false
	}
	_, ok := d.regexes.Match(word)
	return ok
}

func (d *MapDictionary) MatchRegex(word string) (string, bool) {
	if d.regexes == nil {
		return "", false
	}
	return d.regexes.Match(word)
}

func (d *MapDictionary) BuildExpressions(word string) disjunct.Chain {
	return d.entries[word].Expressions
}

func (d *MapDictionary) IsCommonEntity(word string) bool {
	return d.entries[word].Common
}

func (d *MapDictionary) HasUnknownWord() bool {
	return d.hasUnknown
}
