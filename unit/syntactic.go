package unit

import (
	"unicode/utf8"

	"github.com/revelaction/menzerath/lds"
	"github.com/revelaction/menzerath/subtree"
	"github.com/revelaction/menzerath/treebank"
)

// Sentence returns the analyses whose construct is the sentence.
func Sentence() []Analysis {
	return []Analysis{
		{
			Name:    "sentence_clause_word_cut",
			Header:  header("sent_text", "clause_n", "word_n"),
			extract: sentenceClauseWord,
		},
		{
			Name:    "sentence_clause_word_punct",
			Header:  header("sent_text", "clause_n", "word_n"),
			extract: sentenceClauseWordPunct,
		},
		{
			Name:    "sentence_phrase_word",
			Header:  header("sent_text", "phrase_n", "word_n"),
			extract: sentencePhraseWord,
		},
		{
			Name:    "sentence_clause_phrase_cut",
			Header:  header("sent_text", "clause_n", "c_phrase_n"),
			extract: sentenceClausePhrase,
		},
		{
			Name:    "sentence_clause_lds_cut",
			Header:  header("sent_text", "clause_n", "lds_n"),
			extract: sentenceClauseLDS,
		},
	}
}

// Clause returns the analyses whose construct is the clause.
func Clause() []Analysis {
	return []Analysis{
		{
			Name:    "clause_word_character_cut",
			Header:  header("clause_text", "word_n", "character_n"),
			extract: clauseWordCharacter,
		},
		{
			Name:    "clause_word_character_punct",
			Header:  header("clause_text", "word_n", "character_n"),
			extract: clauseWordCharacterPunct,
		},
		{
			Name:    "clause_phrase_word_cut",
			Header:  header("clause_text", "c_phrase_n", "word_n"),
			extract: clausePhraseWord,
		},
		{
			Name:    "clause_lds_word_cut",
			Header:  header("clause_text", "lds_n", "word_n"),
			extract: clauseLDSWord,
		},
	}
}

// Phrase returns the analyses whose construct is a phrase or a linear
// dependency segment.
func Phrase() []Analysis {
	return []Analysis{
		{
			Name:    "s_phrase_word_character",
			Header:  header("phrase_text", "word_n", "character_n"),
			extract: sentencePhraseWordCharacter,
		},
		{
			Name:     "c_phrase_word_character_cut",
			TypeName: "c_phrase_word_character_cut_type",
			Header:   header("phrase_text", "word_n", "character_n"),
			extract:  clausePhraseWordCharacter,
		},
		{
			Name:     "lds_word_character_cut",
			TypeName: "lds_word_character_cut_type",
			Header:   header("lds_text", "word_n", "character_n"),
			extract:  ldsWordCharacter,
		},
	}
}

// rootSize is the number of non-punctuation words of s: the root and its
// descendants.
func rootSize(s *treebank.Sentence) int {
	root := s.RootWord()
	if root == nil {
		return 0
	}
	return len(root.AllChildren) + 1
}

// phraseHeads counts the direct children of w that are not clause heads.
func phraseHeads(s *treebank.Sentence, w *treebank.Word) int {
	n := 0
	for _, c := range w.DirectChildren {
		if !s.Word(c).Clause {
			n++
		}
	}
	return n
}

func sentenceClauseWord(s *treebank.Sentence, emit func(Record)) {
	emit(Record{
		SentenceID:  s.ID,
		Text:        s.Text,
		Construct:   len(s.ClauseHeads()),
		Constituent: rootSize(s),
	})
}

func sentencePhraseWord(s *treebank.Sentence, emit func(Record)) {
	root := s.RootWord()
	if root == nil {
		return
	}

	emit(Record{
		SentenceID:  s.ID,
		Text:        s.Text,
		Construct:   len(root.DirectChildren),
		Constituent: len(root.AllChildren),
	})
}

func sentenceClausePhrase(s *treebank.Sentence, emit func(Record)) {
	clauses, phrases := 0, 0
	for _, h := range s.ClauseHeads() {
		clauses++
		phrases += phraseHeads(s, s.Word(h))
	}

	emit(Record{SentenceID: s.ID, Text: s.Text, Construct: clauses, Constituent: phrases})
}

func sentenceClauseLDS(s *treebank.Sentence, emit func(Record)) {
	clauses, segments := 0, 0
	for _, h := range s.ClauseHeads() {
		clauses++
		segments += lds.Count(s, h)
	}

	emit(Record{SentenceID: s.ID, Text: s.Text, Construct: clauses, Constituent: segments})
}

// clauseWordCharacter measures each clause as its words, the head last.
func clauseWordCharacter(s *treebank.Sentence, emit func(Record)) {
	for _, h := range s.ClauseHeads() {
		head := s.Word(h)
		emit(Record{
			SentenceID:  s.ID,
			Text:        subtree.Stringify(s, head.DirectChildren) + head.Form,
			Construct:   subtree.Count(s, head.DirectChildren) + 1,
			Constituent: subtree.CountLength(s, head.DirectChildren) + utf8.RuneCountInString(head.Form),
		})
	}
}

// clausePhraseWord excludes the clause head from both counts.
func clausePhraseWord(s *treebank.Sentence, emit func(Record)) {
	for _, h := range s.ClauseHeads() {
		head := s.Word(h)
		emit(Record{
			SentenceID:  s.ID,
			Text:        subtree.Stringify(s, head.DirectChildren),
			Construct:   phraseHeads(s, head),
			Constituent: subtree.Count(s, head.DirectChildren),
		})
	}
}

func clauseLDSWord(s *treebank.Sentence, emit func(Record)) {
	for _, h := range s.ClauseHeads() {
		head := s.Word(h)
		emit(Record{
			SentenceID:  s.ID,
			Text:        head.Form + subtree.Separator + subtree.Stringify(s, head.DirectChildren),
			Construct:   lds.Count(s, h),
			Constituent: subtree.Count(s, head.DirectChildren) + 1,
		})
	}
}

// sentencePhraseWordCharacter measures every phrase governed by the root,
// including nested clauses.
func sentencePhraseWordCharacter(s *treebank.Sentence, emit func(Record)) {
	root := s.RootWord()
	if root == nil {
		return
	}

	for _, c := range root.DirectChildren {
		child := s.Word(c)
		below := s.WordsAt(child.AllChildren)
		emit(Record{
			SentenceID:  s.ID,
			Text:        child.Form + subtree.Separator + subtree.Join(below),
			Construct:   len(below) + 1,
			Constituent: subtree.Length(below) + utf8.RuneCountInString(child.Form),
		})
	}
}

// clausePhraseWordCharacter measures every phrase of a clause, stopping at
// nested clauses. The phrase head comes last in the text.
func clausePhraseWordCharacter(s *treebank.Sentence, emit func(Record)) {
	for _, h := range s.ClauseHeads() {
		for _, c := range s.Word(h).DirectChildren {
			child := s.Word(c)
			if child.Clause {
				continue
			}

			words := append(subtree.List(s, child.DirectChildren), child)
			emit(Record{
				SentenceID:  s.ID,
				Text:        subtree.Join(words),
				Construct:   len(words),
				Constituent: subtree.Length(words),
			})
		}
	}
}

func ldsWordCharacter(s *treebank.Sentence, emit func(Record)) {
	for _, h := range s.ClauseHeads() {
		for _, segment := range lds.Segment(s, h) {
			emit(Record{
				SentenceID:  s.ID,
				Text:        subtree.Join(segment),
				Construct:   len(segment),
				Constituent: subtree.Length(segment),
			})
		}
	}
}
