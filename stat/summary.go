package stat

import (
	"github.com/revelaction/menzerath/treebank"
)

// Summary describes the size of a treebank.
type Summary struct {
	NumSentences int
	NumWords     int
	NumPunct     int
	NumClauses   int

	WordsPerSentenceMean float64
	WordsPerSentenceDis  map[int]int
}

// Summarize counts the sentences, words and clause heads of tb. Words per
// sentence exclude punctuation.
func Summarize(tb *treebank.Treebank) Summary {
	sum := Summary{WordsPerSentenceDis: map[int]int{}}
	sum.NumSentences = len(tb.Sentences)

	for _, s := range tb.Sentences {
		words := 0
		for i := range s.Words {
			if s.Words[i].IsPunct() {
				sum.NumPunct++
				continue
			}
			words++
		}

		sum.NumWords += words
		sum.NumClauses += len(s.ClauseHeads())
		sum.WordsPerSentenceDis[words]++
	}

	if sum.NumSentences > 0 {
		sum.WordsPerSentenceMean = float64(sum.NumWords) / float64(sum.NumSentences)
	}

	return sum
}
