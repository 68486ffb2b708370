// Package disjunct defines the opaque output of expression building: the
// per-alternative structures the parser downstream of this package
// consumes. Construction and combination are collaborators per §6 of the
// tokenizer spec; this package only carries the shape the tokenizer needs
// to rewrite (the disjunct's word string) and concatenate.
package disjunct

// Expr is a single disjunct expression attached to a lattice alternative.
// Word is rewritten by the expression builder when an alternative turns
// out to be a regex match, a spell guess, or an unknown word (see
// rewriteTag in package expr); everything else about a disjunct's connector
// structure is opaque to tokenization.
type Expr struct {
	Word string
	// Subscript is the dictionary-assigned disambiguation glyph sequence
	// from the original dictionary entry, preserved verbatim through any
	// rewrite of Word (see rewriteTag in package expr).
	Subscript string
}

// Chain is an ordered list of expressions, e.g. all the disjuncts that
// build_word_expressions returned for one dictionary entry.
type Chain []Expr

// Catenate concatenates zero or more chains into one, in order. It mirrors
// the external catenate_expressions collaborator named in §6, specialized
// to the in-process Chain representation used by this module.
func Catenate(chains ...Chain) Chain {
	n := 0
	for _, c := range chains {
		n += len(c)
	}
	if n == 0 {
		return nil
	}
	out := make(Chain, 0, n)
	for _, c := range chains {
		out = append(out, c...)
	}
	return out
}
