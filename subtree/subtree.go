// Package subtree walks the descendants of a word without entering nested
// clauses.
//
// Every function takes the direct children positions of a word. A child
// tagged as a clause head is a cut: neither the child nor anything below it
// is visited.
package subtree

import (
	"strings"
	"unicode/utf8"

	"github.com/revelaction/menzerath/treebank"
)

// Separator follows every form in Stringify.
const Separator = "+"

func walk(s *treebank.Sentence, children []int, visit func(*treebank.Word)) {
	for _, c := range children {
		child := s.Word(c)
		if child.Clause {
			continue
		}

		visit(child)
		walk(s, child.DirectChildren, visit)
	}
}

// Stringify concatenates the forms of the visited words depth-first, each
// followed by Separator.
func Stringify(s *treebank.Sentence, children []int) string {
	var b strings.Builder
	walk(s, children, func(w *treebank.Word) {
		b.WriteString(w.Form)
		b.WriteString(Separator)
	})
	return b.String()
}

// List returns the visited words depth-first.
func List(s *treebank.Sentence, children []int) []*treebank.Word {
	var words []*treebank.Word
	walk(s, children, func(w *treebank.Word) {
		words = append(words, w)
	})
	return words
}

// Count returns the number of visited words.
func Count(s *treebank.Sentence, children []int) int {
	n := 0
	walk(s, children, func(*treebank.Word) {
		n++
	})
	return n
}

// CountLength returns the summed form length, in characters, of the visited
// words.
func CountLength(s *treebank.Sentence, children []int) int {
	n := 0
	walk(s, children, func(w *treebank.Word) {
		n += utf8.RuneCountInString(w.Form)
	})
	return n
}

// Join concatenates the forms of words, each followed by Separator.
func Join(words []*treebank.Word) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w.Form)
		b.WriteString(Separator)
	}
	return b.String()
}

// Length returns the summed form length of words.
func Length(words []*treebank.Word) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w.Form)
	}
	return n
}
