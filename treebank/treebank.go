// Package treebank builds an in-memory forest of dependency trees from a
// CoNLL-U file and annotates it with descendant sets and clause heads.
package treebank

// NoWord marks an absent position in Parent, Next and Root.
const NoWord = -1

const (
	// DeprelPunct words never get a parent and are excluded from all
	// descendant sets.
	DeprelPunct = "punct"
	DeprelRoot  = "root"
	DeprelConj  = "conj"
)

// Treebank is an ordered collection of sentences.
type Treebank struct {
	Sentences []*Sentence
}

// Sentence is a dependency tree. Words are stored in document order, so the
// position of a word is its ID minus one.
type Sentence struct {
	ID   string
	Text string

	Words []Word

	// Root is the position of the root word, NoWord before linking.
	Root int
}

// Word represents one annotated token of a sentence.
//
// Parent, Next, DirectChildren and AllChildren hold positions into the
// Words slice of the owning Sentence.
type Word struct {
	ID    int
	Form  string
	Lemma string
	UPOS  string
	XPOS  string
	Feats string

	// Head is the governor ID as annotated, 0 for the root.
	Head   int
	Deprel string
	Deps   string

	// Translit is the lower-cased romanization, empty if not annotated.
	Translit string

	// Clause is set for clause heads.
	Clause bool

	Parent int
	Next   int

	// DirectChildren is in ascending ID order.
	DirectChildren []int

	// AllChildren is the transitive closure of DirectChildren.
	AllChildren []int
}

// IsPunct reports whether the word is a punctuation token.
func (w *Word) IsPunct() bool {
	return w.Deprel == DeprelPunct
}

// HasParent reports whether the word is governed by another word.
func (w *Word) HasParent() bool {
	return w.Parent != NoWord
}

// Word returns the word at position pos.
func (s *Sentence) Word(pos int) *Word {
	return &s.Words[pos]
}

// RootWord returns the root word or nil if the sentence is not linked.
func (s *Sentence) RootWord() *Word {
	if s.Root == NoWord {
		return nil
	}
	return &s.Words[s.Root]
}

// Parent returns the governor of w, nil for the root and punctuation.
func (s *Sentence) Parent(w *Word) *Word {
	if w.Parent == NoWord {
		return nil
	}
	return &s.Words[w.Parent]
}

// Position returns the position of w in the sentence.
func (s *Sentence) Position(w *Word) int {
	return w.ID - 1
}

// WordsAt returns the words at the given positions.
func (s *Sentence) WordsAt(positions []int) []*Word {
	words := make([]*Word, 0, len(positions))
	for _, p := range positions {
		words = append(words, &s.Words[p])
	}
	return words
}

// ClauseHeads returns the positions of clause-tagged words in ID order.
func (s *Sentence) ClauseHeads() []int {
	var heads []int
	for i := range s.Words {
		if s.Words[i].Clause {
			heads = append(heads, i)
		}
	}
	return heads
}

// Sentence returns the sentence with the given ID.
func (tb *Treebank) Sentence(id string) (*Sentence, bool) {
	for _, s := range tb.Sentences {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// IDs returns the sentence IDs in document order.
func (tb *Treebank) IDs() []string {
	ids := make([]string, 0, len(tb.Sentences))
	for _, s := range tb.Sentences {
		ids = append(ids, s.ID)
	}
	return ids
}
