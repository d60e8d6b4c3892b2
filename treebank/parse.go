package treebank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	sentIDMarker   = "# sent_id"
	textMarker     = "# text ="
	commentPrefix  = "#"
	translitMarker = "Translit"

	fieldSeparator = "\t"
	minFields      = 9
	miscField      = 9
)

// Parse reads CoNLL-U records into an unlinked Treebank. Use Build to get a
// fully linked and tagged one.
func Parse(r io.Reader) (*Treebank, error) {
	tb := &Treebank{}
	var current *Sentence

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, sentIDMarker):
			parts := strings.Split(line, "=")
			if len(parts) < 2 {
				return nil, &LineError{Line: lineNum, Err: fmt.Errorf("%w: sentence id without '='", ErrMalformedRecord)}
			}
			current = &Sentence{ID: strings.TrimSpace(parts[1]), Root: NoWord}
			tb.Sentences = append(tb.Sentences, current)

		case strings.HasPrefix(line, textMarker):
			if current == nil {
				return nil, &LineError{Line: lineNum, Err: ErrNoSentence}
			}
			current.Text = strings.TrimSpace(strings.SplitN(line, "=", 2)[1])

		case strings.HasPrefix(line, commentPrefix), strings.TrimSpace(line) == "":
			continue

		default:
			if current == nil {
				return nil, &LineError{Line: lineNum, Err: ErrNoSentence}
			}

			w, ok, err := parseWord(line)
			if err != nil {
				return nil, &LineError{Line: lineNum, Err: err}
			}
			if !ok {
				continue
			}
			current.Words = append(current.Words, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tb, nil
}

// parseWord parses one word line. It returns false for multiword range lines
// and empty nodes, which are not part of the basic dependency tree.
func parseWord(line string) (Word, bool, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return Word{}, false, fmt.Errorf("%w: %d fields, expected at least %d", ErrMalformedRecord, len(fields), minFields)
	}

	if strings.ContainsAny(fields[0], "-.") {
		return Word{}, false, nil
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 1 {
		return Word{}, false, fmt.Errorf("%w: invalid id %q", ErrMalformedRecord, fields[0])
	}

	head, err := strconv.Atoi(fields[6])
	if err != nil || head < 0 {
		return Word{}, false, fmt.Errorf("%w: invalid head %q", ErrMalformedRecord, fields[6])
	}

	w := Word{
		ID:     id,
		Form:   strings.TrimSpace(fields[1]),
		Lemma:  fields[2],
		UPOS:   fields[3],
		XPOS:   fields[4],
		Feats:  fields[5],
		Head:   head,
		Deprel: fields[7],
		Deps:   fields[8],
		Parent: NoWord,
		Next:   NoWord,
	}

	if strings.Contains(line, translitMarker) && len(fields) > miscField {
		kv := strings.Split(fields[miscField], "=")
		w.Translit = strings.ToLower(strings.TrimSpace(kv[len(kv)-1]))
	}

	return w, true, nil
}
