package dict

import (
	"bufio"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/linkgrammar/tokenizer/disjunct"
)

// LoadMapDictionary builds a MapDictionary from a directory of plain-text
// word-list files (glob "*.words") and regex-source files (glob
// "*.regex"), in the same doublestar-glob style as affix.Load. Each line
// of a .words file is "word" or "word\tCOMMON" to flag a common entity
// (§GLOSSARY); each line of a .regex file is "name\tpattern". Built
// expressions are a single placeholder disjunct carrying the word itself,
// suitable for the CLI and for tests that only care about tokenization
// shape, not real linkage.
func LoadMapDictionary(fsys fs.FS, dataDir string, unknownWord string) (*MapDictionary, error) {
	d := NewMapDictionary(unknownWord)

	wordFiles, err := doublestar.Glob(fsys, dataDir+"/*.words")
	if err != nil {
		return nil, fmt.Errorf("dict: globbing %s/*.words: %w", dataDir, err)
	}
	for _, path := range wordFiles {
		if err := loadWordFile(fsys, path, d); err != nil {
			return nil, err
		}
	}

	regexFiles, err := doublestar.Glob(fsys, dataDir+"/*.regex")
	if err != nil {
		return nil, fmt.Errorf("dict: globbing %s/*.regex: %w", dataDir, err)
	}
	var sources []RegexSource
	for _, path := range regexFiles {
		srcs, err := loadRegexFile(fsys, path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, srcs...)
	}
	if len(sources) > 0 {
		table, err := CompileRegexTable(sources)
		if err != nil {
			return nil, fmt.Errorf("dict: compiling regex table: %w", err)
		}
		d.SetRegexTable(table)
	}

	return d, nil
}

func loadWordFile(fsys fs.FS, path string, d *MapDictionary) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("dict: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		word := fields[0]
		common := len(fields) > 1 && strings.EqualFold(fields[1], "COMMON")
		d.Add(word, Entry{
			Expressions: disjunct.Chain{{Word: word}},
			Common:      common,
		})
	}
	return scanner.Err()
}

func loadRegexFile(fsys fs.FS, path string) ([]RegexSource, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: opening %s: %w", path, err)
	}
	defer f.Close()

	var sources []RegexSource
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("dict: malformed regex line in %s: %q", path, line)
		}
		sources = append(sources, RegexSource{Name: fields[0], Pattern: fields[1]})
	}
	return sources, scanner.Err()
}
