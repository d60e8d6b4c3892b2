// Package lds partitions a clause into linear dependency segments: maximal
// runs of words that are adjacent in the sentence, ignoring punctuation, and
// directly related by a dependency.
package lds

import (
	"sort"

	"github.com/revelaction/menzerath/subtree"
	"github.com/revelaction/menzerath/treebank"
)

// Segment returns the segments of the clause headed by the word at position
// head, in ID order. Words of nested clauses are not part of the clause.
func Segment(s *treebank.Sentence, head int) [][]*treebank.Word {
	h := s.Word(head)
	nodes := subtree.List(s, h.DirectChildren)

	if len(nodes) == 0 {
		return [][]*treebank.Word{{h}}
	}

	nodes = append(nodes, h)
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})

	var segments [][]*treebank.Word
	var current []*treebank.Word

	for i := 0; i < len(nodes)-1; i++ {
		current = append(current, nodes[i])

		if !linked(s, nodes[i], nodes[i+1]) {
			segments = append(segments, current)
			current = nil
		}
	}

	current = append(current, nodes[len(nodes)-1])
	segments = append(segments, current)

	return segments
}

// linked reports whether b is the linear successor of a, skipping
// punctuation, and one of them governs the other.
func linked(s *treebank.Sentence, a, b *treebank.Word) bool {
	next := a.Next
	for next != treebank.NoWord && s.Word(next).IsPunct() {
		next = s.Word(next).Next
	}

	if next == treebank.NoWord || s.Word(next) != b {
		return false
	}

	pa, pb := s.Position(a), s.Position(b)
	return b.Parent == pa || a.Parent == pb
}

// Count returns the number of segments of the clause headed by head.
func Count(s *treebank.Sentence, head int) int {
	return len(Segment(s, head))
}
