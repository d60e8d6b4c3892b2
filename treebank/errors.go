package treebank

import (
	"errors"
	"fmt"
)

var (
	ErrNonContiguous   = errors.New("word ids are not contiguous")
	ErrHeadOutOfRange  = errors.New("head id out of range")
	ErrNoRoot          = errors.New("sentence has no root")
	ErrMultipleRoots   = errors.New("sentence has more than one root")
	ErrCycle           = errors.New("dependency cycle")
	ErrMalformedRecord = errors.New("malformed word record")
	ErrNoSentence      = errors.New("word record outside of a sentence")
)

// LineError locates a parse error in the input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// SentenceError locates a construction error in a sentence. WordID is 0 when
// the error concerns the whole sentence.
type SentenceError struct {
	SentenceID string
	WordID     int
	Err        error
}

func (e *SentenceError) Error() string {
	if e.WordID == 0 {
		return fmt.Sprintf("sentence %q: %v", e.SentenceID, e.Err)
	}
	return fmt.Sprintf("sentence %q: word %d: %v", e.SentenceID, e.WordID, e.Err)
}

func (e *SentenceError) Unwrap() error {
	return e.Err
}
