package spell

import "sort"

// WordListOracle is a minimal default Oracle: it suggests known words
// within a small edit distance of the query, ordered by distance then
// alphabetically. It has no dependency on an external spell-checking
// engine, since §1 places spell-checker bindings out of scope and only
// requires the interface boundary in §6 to exist.
type WordListOracle struct {
	words    []string
	maxEdits int
}

// NewWordListOracle builds an oracle over the given known words, with the
// given maximum edit distance to consider for a suggestion.
func NewWordListOracle(words []string, maxEdits int) *WordListOracle {
	cp := make([]string, len(words))
	copy(cp, words)
	sort.Strings(cp)
	return &WordListOracle{words: cp, maxEdits: maxEdits}
}

func (o *WordListOracle) Test(word string) bool {
	i := sort.SearchStrings(o.words, word)
	return i < len(o.words) && o.words[i] == word
}

func (o *WordListOracle) Suggest(word string) []string {
	type candidate struct {
		word string
		dist int
	}
	var candidates []candidate
	for _, w := range o.words {
		d := levenshtein(word, w)
		if d <= o.maxEdits {
			candidates = append(candidates, candidate{w, d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].word < candidates[j].word
	})
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
