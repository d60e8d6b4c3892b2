// Package pinyin rewrites pinyin syllables so that one character stands for
// one sound.
//
// The rules follow Lin, Y.-H. (2007) The Sounds of Chinese.
package pinyin

import (
	"strings"
	"unicode/utf8"
)

// SyllableSeparator separates the syllables of a word transliteration.
const SyllableSeparator = ","

var (
	initials   = strings.NewReplacer("ch", "$", "sh", "$", "zh", "$")
	diphthongs = strings.NewReplacer("ai", "#", "ao", "#", "ei", "#", "ou", "#")
	labialO    = strings.NewReplacer("bo", "bwo", "fo", "fwo", "mo", "mwo", "po", "pwo")
)

// Sound rewrites a pinyin syllable (or word) into its sound string.
func Sound(syllable string) string {
	s := initials.Replace(syllable)
	s = diphthongs.Replace(s)
	s = strings.ReplaceAll(s, "yue", "ɥe")
	s = strings.ReplaceAll(s, "yuan", "ɥæn")
	s = labialO.Replace(s)
	s = insertGlide(s, "ing", "jə", "y")
	s = insertGlide(s, "un", "wə", "jqxy")
	s = strings.ReplaceAll(s, "ng", "ŋ")
	return s
}

// insertGlide replaces the first rune of every occurrence of pattern with
// glide, unless the occurrence follows one of the runes in except.
func insertGlide(s, pattern, glide, except string) string {
	if !strings.Contains(s, pattern) {
		return s
	}

	var b strings.Builder
	var prev rune
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if strings.HasPrefix(s[i:], pattern) && !strings.ContainsRune(except, prev) {
			b.WriteString(glide)
		} else {
			b.WriteRune(r)
		}
		prev = r
		i += size
	}
	return b.String()
}

// Syllables splits a transliteration into sound strings.
func Syllables(translit string) []string {
	parts := strings.Split(translit, SyllableSeparator)
	sounds := make([]string, 0, len(parts))
	for _, p := range parts {
		sounds = append(sounds, Sound(p))
	}
	return sounds
}

// Count returns the number of sounds in the sound strings.
func Count(sounds []string) int {
	n := 0
	for _, s := range sounds {
		n += utf8.RuneCountInString(s)
	}
	return n
}
