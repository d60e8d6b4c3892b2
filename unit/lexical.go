package unit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/revelaction/menzerath/hanzi"
	"github.com/revelaction/menzerath/pinyin"
	"github.com/revelaction/menzerath/treebank"
)

// Word returns the analyses whose construct is the word. Component and
// stroke analyses need d and are omitted when it is nil.
func Word(d hanzi.Dictionary) []Analysis {
	var analyses []Analysis
	if d != nil {
		analyses = append(analyses,
			Analysis{
				Name:     "word_character_component_token",
				TypeName: "word_character_component_type",
				Header:   header("word_char", "character_token_n", "component_n"),
				extract:  wordCharacter(d, componentsOf),
			},
			Analysis{
				Name:     "word_character_stroke_token",
				TypeName: "word_character_stroke_type",
				Header:   header("word_char", "character_token_n", "stroke_n"),
				extract:  wordCharacter(d, strokesOf),
			},
		)
	}

	return append(analyses, Analysis{
		Name:     "word_syllable_sound_token",
		TypeName: "word_syllable_sound_type",
		Header:   header("word_sound", "character_token_n", "sound_n"),
		extract:  wordSyllableSound,
	})
}

// Character returns the analyses whose construct is the character, nil when
// d is nil.
func Character(d hanzi.Dictionary) []Analysis {
	if d == nil {
		return nil
	}

	return []Analysis{
		{
			Name:     "character_component_stroke_token",
			TypeName: "character_component_stroke_type",
			Header:   header("character", "component_n", "stroke_n"),
			extract:  characterComponentStroke(d),
		},
	}
}

func hasASCII(s string) bool {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			return true
		}
	}
	return false
}

// lexical reports whether w takes part in word level analyses.
func lexical(w *treebank.Word) bool {
	return !w.IsPunct() && !hasASCII(w.Form)
}

func componentsOf(d hanzi.Dictionary, form string) int {
	c, _ := d.ComponentStroke(form)
	return c
}

func strokesOf(d hanzi.Dictionary, form string) int {
	_, s := d.ComponentStroke(form)
	return s
}

func wordCharacter(d hanzi.Dictionary, measure func(hanzi.Dictionary, string) int) func(*treebank.Sentence, func(Record)) {
	return func(s *treebank.Sentence, emit func(Record)) {
		for i := range s.Words {
			w := &s.Words[i]
			if !lexical(w) {
				continue
			}

			emit(Record{
				SentenceID:  s.ID,
				Text:        w.Form,
				Construct:   utf8.RuneCountInString(w.Form),
				Constituent: measure(d, w.Form),
			})
		}
	}
}

// wordSyllableSound measures transliterated words. The text is the sound
// sequence of the word, so types are distinct pronunciations.
func wordSyllableSound(s *treebank.Sentence, emit func(Record)) {
	for i := range s.Words {
		w := &s.Words[i]
		if !lexical(w) || w.Translit == "" {
			continue
		}

		sounds := pinyin.Syllables(w.Translit)
		emit(Record{
			SentenceID:  s.ID,
			Text:        strings.Join(sounds, pinyin.SyllableSeparator),
			Construct:   utf8.RuneCountInString(w.Form),
			Constituent: pinyin.Count(sounds),
		})
	}
}

// characterComponentStroke emits every non-ASCII character of the
// non-punctuation words. Unknown characters get zero counts.
func characterComponentStroke(d hanzi.Dictionary) func(*treebank.Sentence, func(Record)) {
	return func(s *treebank.Sentence, emit func(Record)) {
		for i := range s.Words {
			w := &s.Words[i]
			if w.IsPunct() {
				continue
			}

			for _, r := range w.Form {
				if r <= unicode.MaxASCII {
					continue
				}

				c := d[string(r)]
				emit(Record{
					SentenceID:  s.ID,
					Text:        string(r),
					Construct:   c.Components,
					Constituent: c.Strokes,
				})
			}
		}
	}
}
