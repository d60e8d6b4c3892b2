package hanzi

import (
	"bufio"
	"io"
	"strings"
)

// ampersand opens an entity reference (&CDP-8B7C;) for a component with no
// code point; it is counted as one component.
const ampersand = '&'

// isIDC reports whether r is an ideographic description character
// (U+2FF0..U+2FFB).
func isIDC(r rune) bool {
	return r >= '⿰' && r <= '⿻'
}

// ReadCHISE parses a CHISE IDS file: tab separated code point, character and
// ideographic description sequence.
func ReadCHISE(r io.Reader) (Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	d := Dictionary{}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ";;") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}

		d[fields[1]] = parseIDS(fields[1], fields[2])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

func parseIDS(ch, ids string) Char {
	if ids == "" {
		return Char{Components: 1, Parts: []string{ch}}
	}

	var parts []string
	for _, r := range ids {
		if r == ampersand || (!isIDC(r) && r > 0x7f) {
			parts = append(parts, string(r))
		}
	}

	return Char{Components: len(parts), Parts: parts}
}
