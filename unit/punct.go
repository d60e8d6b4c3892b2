package unit

import (
	"strings"

	"github.com/revelaction/menzerath/subtree"
	"github.com/revelaction/menzerath/treebank"
)

// clausalPunct holds the punctuation forms that close a clause when clauses
// are delimited by punctuation instead of syntax.
var clausalPunct = map[string]bool{
	"，":  true,
	"：":  true,
	"；":  true,
	"…":  true,
	"……": true,
}

// IsClausalPunct reports whether w closes a clause.
func IsClausalPunct(w *treebank.Word) bool {
	return w.IsPunct() && clausalPunct[w.Form]
}

// sentenceClauseWordPunct counts one clause plus one per clausal
// punctuation mark.
func sentenceClauseWordPunct(s *treebank.Sentence, emit func(Record)) {
	clauses := 1
	for i := range s.Words {
		if IsClausalPunct(&s.Words[i]) {
			clauses++
		}
	}

	emit(Record{SentenceID: s.ID, Text: s.Text, Construct: clauses, Constituent: rootSize(s)})
}

// clauseWordCharacterPunct emits the non-empty runs of non-punctuation words
// between clausal punctuation marks. A run left open at the end of the
// sentence is emitted too.
func clauseWordCharacterPunct(s *treebank.Sentence, emit func(Record)) {
	var run []*treebank.Word

	flush := func() {
		if len(run) == 0 {
			return
		}

		var text strings.Builder
		for _, w := range run {
			text.WriteString(w.Form)
		}

		emit(Record{
			SentenceID:  s.ID,
			Text:        text.String(),
			Construct:   len(run),
			Constituent: subtree.Length(run),
		})
		run = nil
	}

	for i := range s.Words {
		w := &s.Words[i]
		switch {
		case !w.IsPunct():
			run = append(run, w)
		case clausalPunct[w.Form]:
			flush()
		}
	}

	flush()
}
