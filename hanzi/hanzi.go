// Package hanzi loads Chinese character metadata: the components a character
// decomposes into and its stroke count.
package hanzi

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"
)

func logger() *slog.Logger {
	return slog.Default().With(slog.String("component", "hanzi"))
}

// Char is the metadata of one character.
type Char struct {
	Components int
	Strokes    int
	Parts      []string
	Pinyin     string
}

// Dictionary maps a character to its metadata.
type Dictionary map[string]Char

// Lookup returns the metadata of ch.
func (d Dictionary) Lookup(ch string) (Char, bool) {
	c, ok := d[ch]
	return c, ok
}

// ComponentStroke returns the summed component and stroke counts of the
// characters of form. If any character is unknown both counts are zero.
func (d Dictionary) ComponentStroke(form string) (components, strokes int) {
	for _, r := range form {
		c, ok := d[string(r)]
		if !ok {
			return 0, 0
		}
		components += c.Components
		strokes += c.Strokes
	}
	return components, strokes
}

// MaxComponents counts the components of ch after decomposing every
// component that is itself decomposable.
func (d Dictionary) MaxComponents(ch string) int {
	return d.maxComponents(ch, map[string]bool{})
}

func (d Dictionary) maxComponents(ch string, visiting map[string]bool) int {
	c, ok := d[ch]
	if !ok {
		return 0
	}

	visiting[ch] = true
	defer delete(visiting, ch)

	n := 0
	for _, part := range c.Parts {
		sub, ok := d[part]
		if ok && sub.Components > 1 && !visiting[part] {
			n += d.maxComponents(part, visiting)
			continue
		}
		n++
	}
	return n
}

// Maximal returns a copy of d whose component counts come from
// MaxComponents.
func (d Dictionary) Maximal() Dictionary {
	out := make(Dictionary, len(d))
	for ch, c := range d {
		c.Components = d.MaxComponents(ch)
		out[ch] = c
	}
	return out
}

// WithStrokes returns the characters of d present in other, with the stroke
// counts of other.
func (d Dictionary) WithStrokes(other Dictionary) Dictionary {
	out := make(Dictionary, len(d))
	for ch, c := range d {
		o, ok := other[ch]
		if !ok {
			continue
		}
		c.Strokes = o.Strokes
		out[ch] = c
	}
	return out
}

// LoadBLCU reads a BLCU character information file.
func LoadBLCU(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	d, err := ReadBLCU(f)
	if err != nil {
		return nil, fmt.Errorf("blcu %s: %w", path, err)
	}

	logger().Debug("loaded character metadata", slog.String("path", path), slog.Int("chars", len(d)))
	return d, nil
}

// LoadCHISE reads a CHISE IDS file.
func LoadCHISE(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	d, err := ReadCHISE(f)
	if err != nil {
		return nil, fmt.Errorf("chise %s: %w", path, err)
	}

	logger().Debug("loaded character metadata", slog.String("path", path), slog.Int("chars", len(d)))
	return d, nil
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}
