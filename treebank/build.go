package treebank

import (
	"fmt"
	"io"
	"os"
)

// clausalRelations are the dependency relations that head a clause.
var clausalRelations = map[string]bool{
	"root":       true,
	"csubj":      true,
	"csubj:pass": true,
	"ccomp":      true,
	"xcomp":      true,
	"advcl":      true,
	"acl":        true,
	"acl:relcl":  true,
	"parataxis":  true,
}

// IsClausal reports whether deprel heads a clause on its own.
func IsClausal(deprel string) bool {
	return clausalRelations[deprel]
}

// Build parses r and returns a linked treebank with descendant sets and
// clause tags.
func Build(r io.Reader) (*Treebank, error) {
	tb, err := Parse(r)
	if err != nil {
		return nil, err
	}

	if err := tb.Link(); err != nil {
		return nil, err
	}

	if err := tb.FindAllChildren(); err != nil {
		return nil, err
	}

	tb.TagClauses()
	return tb, nil
}

// ReadFile builds the treebank stored in the CoNLL-U file at path.
func ReadFile(path string) (*Treebank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	tb, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("treebank %s: %w", path, err)
	}
	return tb, nil
}

// Link assigns next nodes, checks ID contiguity and resolves parent and
// child positions.
func (tb *Treebank) Link() error {
	for _, s := range tb.Sentences {
		if err := s.linkNext(); err != nil {
			return err
		}
		if err := s.linkParents(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sentence) linkNext() error {
	for i := range s.Words {
		if s.Words[i].ID != i+1 {
			return &SentenceError{SentenceID: s.ID, WordID: s.Words[i].ID, Err: fmt.Errorf("%w: expected id %d", ErrNonContiguous, i+1)}
		}

		s.Words[i].Next = NoWord
		if i+1 < len(s.Words) {
			s.Words[i].Next = i + 1
		}
	}
	return nil
}

func (s *Sentence) linkParents() error {
	s.Root = NoWord

	for i := range s.Words {
		w := &s.Words[i]
		w.Parent = NoWord
		w.DirectChildren = nil

		if w.Head > len(s.Words) {
			return &SentenceError{SentenceID: s.ID, WordID: w.ID, Err: fmt.Errorf("%w: head %d, sentence has %d words", ErrHeadOutOfRange, w.Head, len(s.Words))}
		}
	}

	for i := range s.Words {
		w := &s.Words[i]

		if w.IsPunct() {
			continue
		}

		if w.Head == 0 {
			if s.Root != NoWord {
				return &SentenceError{SentenceID: s.ID, WordID: w.ID, Err: ErrMultipleRoots}
			}
			s.Root = i
			continue
		}

		w.Parent = w.Head - 1
		parent := &s.Words[w.Parent]
		parent.DirectChildren = append(parent.DirectChildren, i)
	}

	if s.Root == NoWord {
		return &SentenceError{SentenceID: s.ID, Err: ErrNoRoot}
	}

	return nil
}

// FindAllChildren adds every non punctuation word to the descendant set of
// each of its ancestors.
func (tb *Treebank) FindAllChildren() error {
	for _, s := range tb.Sentences {
		if err := s.findAllChildren(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sentence) findAllChildren() error {
	for i := range s.Words {
		s.Words[i].AllChildren = nil
	}

	for i := range s.Words {
		if s.Words[i].IsPunct() {
			continue
		}

		steps := 0
		for p := s.Words[i].Parent; p != NoWord; p = s.Words[p].Parent {
			if p == i || steps >= len(s.Words) {
				return &SentenceError{SentenceID: s.ID, WordID: s.Words[i].ID, Err: ErrCycle}
			}
			s.Words[p].AllChildren = append(s.Words[p].AllChildren, i)
			steps++
		}
	}

	return nil
}

// TagClauses marks clause heads. Words in a conj relation inherit the tag
// from their parent, repeated until no tag changes so that chains of
// coordinated clauses are tagged regardless of word order.
func (tb *Treebank) TagClauses() {
	for _, s := range tb.Sentences {
		s.tagClauses()
	}
}

func (s *Sentence) tagClauses() {
	for i := range s.Words {
		if IsClausal(s.Words[i].Deprel) {
			s.Words[i].Clause = true
		}
	}

	for changed := true; changed; {
		changed = false
		for i := range s.Words {
			w := &s.Words[i]
			if w.Clause || w.Deprel != DeprelConj || w.Parent == NoWord {
				continue
			}

			if s.Words[w.Parent].Clause {
				w.Clause = true
				changed = true
			}
		}
	}
}
