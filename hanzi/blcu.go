package hanzi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// A BLCU record is four lines:
//
//	#一
//	strokes:1
//	pinyin:yi1
//	components:一
const (
	blcuRecordLines = 4
	blcuMarker      = "#"
	blcuSeparator   = ":"
)

var errBLCUValue = errors.New("missing ':' separated value")

// ReadBLCU parses the GB18030 encoded BLCU Dictionary of Chinese Character
// Information.
func ReadBLCU(r io.Reader) (Dictionary, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, simplifiedchinese.GB18030.NewDecoder()))

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d := Dictionary{}
	for i := 0; i < len(lines); {
		if !strings.HasPrefix(lines[i], blcuMarker) || i+blcuRecordLines > len(lines) {
			i++
			continue
		}

		ch := firstRune(strings.TrimPrefix(lines[i], blcuMarker))
		if ch == "" {
			i++
			continue
		}

		c, err := parseBLCURecord(lines[i+1 : i+blcuRecordLines])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		d[ch] = c
		i += blcuRecordLines
	}

	return d, nil
}

func parseBLCURecord(lines []string) (Char, error) {
	strokes, err := blcuValue(lines[0])
	if err != nil {
		return Char{}, err
	}

	n, err := strconv.Atoi(strokes)
	if err != nil {
		return Char{}, fmt.Errorf("invalid stroke count %q: %w", strokes, err)
	}

	pinyin, err := blcuValue(lines[1])
	if err != nil {
		return Char{}, err
	}

	components, err := blcuValue(lines[2])
	if err != nil {
		return Char{}, err
	}

	parts := strings.Fields(components)
	return Char{
		Components: len(parts),
		Strokes:    n,
		Parts:      parts,
		Pinyin:     pinyin,
	}, nil
}

func blcuValue(line string) (string, error) {
	parts := strings.Split(line, blcuSeparator)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", errBLCUValue, line)
	}
	return strings.TrimSpace(parts[1]), nil
}
