// Package dict declares the dictionary-oracle collaborators named in §6 of
// the tokenizer spec (dictionary_lookup, find_word_in_dict, match_regex,
// build_word_expressions) and provides a default in-memory implementation
// suitable for tests and the CLI.
package dict

import "github.com/linkgrammar/tokenizer/disjunct"

// Dictionary is the read-only oracle for "is this a word" and "what
// expressions does it build", per §6 and the Design Notes' "dictionary is
// the single source of truth" principle: callers must not cache its
// answers across tokenizer invocations.
type Dictionary interface {
	// Lookup is dictionary_lookup: literal, case-sensitive membership.
	Lookup(word string) bool
	// FindWord is find_word_in_dict: literal OR regex membership. A regex
	// hit is valid here, but -- per the Design Notes -- explicitly invalid
	// when vetting a stem during suffix splitting, which must call Lookup
	// instead.
	FindWord(word string) bool
	// MatchRegex is match_regex: the name of the first regex that matches
	// word, or "" if none does.
	MatchRegex(word string) (name string, ok bool)
	// BuildExpressions is build_word_expressions for a literal dictionary
	// entry. Callers must already know word is in the dictionary.
	BuildExpressions(word string) disjunct.Chain
	// IsCommonEntity reports whether word is flagged as a common noun or
	// adjective eligible to also serve as part of a proper name (the
	// "common entity" GLOSSARY term), consulted by the expression builder
	// (§4.H) when deciding whether to append or replace.
	IsCommonEntity(word string) bool
	// HasUnknownWord reports whether an UNKNOWN_WORD dictionary entry is
	// defined. §7 treats its absence while enabled as a programming
	// invariant violation.
	HasUnknownWord() bool
}
