// Package unit measures pairs of nested linguistic units: for every
// construct (sentence, clause, phrase, segment, word, character) found in a
// treebank it records the construct length in constituents and the summed
// length of those constituents in the next lower unit.
package unit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/menzerath/hanzi"
	"github.com/revelaction/menzerath/treebank"
)

var ErrUnknownAnalysis = errors.New("unknown analysis")

// Record is one measured construct.
type Record struct {
	SentenceID string
	// Text identifies the construct, usually its forms joined by '+'. Type
	// tables are deduplicated on it.
	Text string

	Construct   int
	Constituent int
}

// Analysis produces the records of one construct/constituent pair.
type Analysis struct {
	Name string

	// TypeName is the name of the type table, empty when the analysis has
	// none.
	TypeName string

	// Header names the columns of a record: sentence, text, construct and
	// constituent.
	Header [4]string

	extract func(s *treebank.Sentence, emit func(Record))
}

// Run returns the records of every sentence of tb, in document order.
func (a Analysis) Run(tb *treebank.Treebank) []Record {
	var records []Record
	for _, s := range tb.Sentences {
		records = append(records, a.RunSentence(s)...)
	}
	return records
}

// RunSentence returns the records of s.
func (a Analysis) RunSentence(s *treebank.Sentence) []Record {
	var records []Record
	a.extract(s, func(r Record) {
		records = append(records, r)
	})
	return records
}

// HasTypes reports whether the analysis has a type table.
func (a Analysis) HasTypes() bool {
	return a.TypeName != ""
}

// Types keeps the first record of every distinct Text.
func Types(records []Record) []Record {
	seen := map[string]bool{}
	types := make([]Record, 0, len(records))
	for _, r := range records {
		if seen[r.Text] {
			continue
		}
		seen[r.Text] = true
		types = append(types, r)
	}
	return types
}

// All returns every analysis. The word and character level analyses that
// need character metadata are left out when d is nil.
func All(d hanzi.Dictionary) []Analysis {
	var all []Analysis
	all = append(all, Sentence()...)
	all = append(all, Clause()...)
	all = append(all, Phrase()...)
	all = append(all, Word(d)...)
	all = append(all, Character(d)...)
	return all
}

// Select returns the analyses of all named in names, in the order of names.
func Select(all []Analysis, names []string) ([]Analysis, error) {
	byName := make(map[string]Analysis, len(all))
	for _, a := range all {
		byName[a.Name] = a
	}

	selected := make([]Analysis, 0, len(names))
	for _, n := range names {
		a, ok := byName[strings.TrimSpace(n)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysis, n)
		}
		selected = append(selected, a)
	}
	return selected, nil
}

// Names returns the table names of analyses.
func Names(analyses []Analysis) []string {
	names := make([]string, 0, len(analyses))
	for _, a := range analyses {
		names = append(names, a.Name)
	}
	return names
}

func header(text, construct, constituent string) [4]string {
	return [4]string{"sent_id", text, construct, constituent}
}
