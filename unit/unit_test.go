package unit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/revelaction/menzerath/hanzi"
	"github.com/revelaction/menzerath/treebank"
)

func row(id int, form string, head int, deprel string) string {
	return fmt.Sprintf("%d\t%s\t%s\tX\tX\t_\t%d\t%s\t_\t_", id, form, form, head, deprel)
}

func translitRow(id int, form string, head int, deprel, translit string) string {
	return fmt.Sprintf("%d\t%s\t%s\tX\tX\t_\t%d\t%s\t_\tTranslit=%s", id, form, form, head, deprel, translit)
}

func build(t *testing.T, lines ...string) *treebank.Treebank {
	t.Helper()
	input := "# sent_id = 1\n# text = test\n" + strings.Join(lines, "\n") + "\n"
	tb, err := treebank.Build(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tb
}

// 我们 昨天 看 的 电影 很 好 。
// 好 is the root, 看 heads a relative clause under 电影.
func relative(t *testing.T) *treebank.Treebank {
	return build(t,
		row(1, "我们", 3, "nsubj"),
		row(2, "昨天", 3, "obl:tmod"),
		row(3, "看", 5, "acl:relcl"),
		row(4, "的", 3, "mark:rel"),
		row(5, "电影", 7, "nsubj"),
		row(6, "很", 7, "advmod"),
		row(7, "好", 0, "root"),
		row(8, "。", 7, "punct"),
	)
}

// 他 说 我 来 ， 她 走 。
func coordinated(t *testing.T) *treebank.Treebank {
	return build(t,
		row(1, "他", 2, "nsubj"),
		row(2, "说", 0, "root"),
		row(3, "我", 4, "nsubj"),
		row(4, "来", 2, "ccomp"),
		row(5, "，", 2, "punct"),
		row(6, "她", 7, "nsubj"),
		row(7, "走", 2, "conj"),
		row(8, "。", 2, "punct"),
	)
}

func run(t *testing.T, analyses []Analysis, name string, tb *treebank.Treebank) []Record {
	t.Helper()
	selected, err := Select(analyses, []string{name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return selected[0].Run(tb)
}

func assertRecords(t *testing.T, name string, got, expected []Record) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: expected %d records, got %d: %v", name, len(expected), len(got), got)
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("%s: record %d: expected %+v, got %+v", name, i, expected[i], got[i])
		}
	}
}

func TestSentenceAnalyses(t *testing.T) {
	tb := relative(t)

	cases := map[string]Record{
		"sentence_clause_word_cut":   {"1", "test", 2, 7},
		"sentence_clause_word_punct": {"1", "test", 1, 7},
		"sentence_phrase_word":       {"1", "test", 2, 6},
		"sentence_clause_phrase_cut": {"1", "test", 2, 5},
		"sentence_clause_lds_cut":    {"1", "test", 2, 4},
	}

	for name, expected := range cases {
		assertRecords(t, name, run(t, Sentence(), name, tb), []Record{expected})
	}
}

func TestClauseAnalyses(t *testing.T) {
	tb := relative(t)

	cases := map[string][]Record{
		"clause_word_character_cut": {
			{"1", "我们+昨天+的+看", 4, 6},
			{"1", "电影+很+好", 3, 4},
		},
		"clause_phrase_word_cut": {
			{"1", "我们+昨天+的+", 3, 3},
			{"1", "电影+很+", 2, 2},
		},
		"clause_lds_word_cut": {
			{"1", "看+我们+昨天+的+", 2, 4},
			{"1", "好+电影+很+", 2, 3},
		},
	}

	for name, expected := range cases {
		assertRecords(t, name, run(t, Clause(), name, tb), expected)
	}
}

func TestPhraseAnalyses(t *testing.T) {
	tb := relative(t)

	cases := map[string][]Record{
		"s_phrase_word_character": {
			{"1", "电影+我们+昨天+看+的+", 5, 8},
			{"1", "很+", 1, 1},
		},
		"c_phrase_word_character_cut": {
			{"1", "我们+", 1, 2},
			{"1", "昨天+", 1, 2},
			{"1", "的+", 1, 1},
			{"1", "电影+", 1, 2},
			{"1", "很+", 1, 1},
		},
		"lds_word_character_cut": {
			{"1", "我们+", 1, 2},
			{"1", "昨天+看+的+", 3, 4},
			{"1", "电影+", 1, 2},
			{"1", "很+好+", 2, 2},
		},
	}

	for name, expected := range cases {
		assertRecords(t, name, run(t, Phrase(), name, tb), expected)
	}
}

func TestPunctuationClauses(t *testing.T) {
	tb := coordinated(t)

	assertRecords(t, "sentence_clause_word_punct",
		run(t, Sentence(), "sentence_clause_word_punct", tb),
		[]Record{{"1", "test", 2, 6}})

	assertRecords(t, "clause_word_character_punct",
		run(t, Clause(), "clause_word_character_punct", tb),
		[]Record{
			{"1", "他说我来", 4, 4},
			{"1", "她走", 2, 2},
		})
}

func TestPunctuationClausesLeadingMark(t *testing.T) {
	tb := build(t,
		row(1, "：", 2, "punct"),
		row(2, "好", 0, "root"),
	)

	assertRecords(t, "clause_word_character_punct",
		run(t, Clause(), "clause_word_character_punct", tb),
		[]Record{{"1", "好", 1, 1}})
}

func lexicalTreebank(t *testing.T) *treebank.Treebank {
	return build(t,
		translitRow(1, "中国", 2, "nsubj", "zhong,guo"),
		row(2, "好", 0, "root"),
		translitRow(3, "AI", 2, "obj", "ai"),
		row(4, "。", 2, "punct"),
	)
}

func dictionary() hanzi.Dictionary {
	return hanzi.Dictionary{
		"中": {Components: 2, Strokes: 4},
		"国": {Components: 2, Strokes: 8},
		"好": {Components: 2, Strokes: 6},
	}
}

func TestWordAnalyses(t *testing.T) {
	tb := lexicalTreebank(t)
	analyses := Word(dictionary())

	assertRecords(t, "component",
		run(t, analyses, "word_character_component_token", tb),
		[]Record{
			{"1", "中国", 2, 4},
			{"1", "好", 1, 2},
		})

	assertRecords(t, "stroke",
		run(t, analyses, "word_character_stroke_token", tb),
		[]Record{
			{"1", "中国", 2, 12},
			{"1", "好", 1, 6},
		})

	assertRecords(t, "sound",
		run(t, analyses, "word_syllable_sound_token", tb),
		[]Record{{"1", "$oŋ,guo", 2, 6}})
}

func TestWordAnalysesWithoutDictionary(t *testing.T) {
	analyses := Word(nil)
	if len(analyses) != 1 || analyses[0].Name != "word_syllable_sound_token" {
		t.Errorf("expected only the sound analysis, got %v", Names(analyses))
	}

	if Character(nil) != nil {
		t.Errorf("expected no character analyses without a dictionary")
	}
}

func TestCharacterAnalysis(t *testing.T) {
	tb := lexicalTreebank(t)
	d := dictionary()
	delete(d, "好")

	assertRecords(t, "character",
		run(t, Character(d), "character_component_stroke_token", tb),
		[]Record{
			{"1", "中", 2, 4},
			{"1", "国", 2, 8},
			{"1", "好", 0, 0},
		})
}

func TestTypes(t *testing.T) {
	records := []Record{
		{"1", "a+", 1, 1},
		{"2", "b+", 1, 2},
		{"3", "a+", 1, 1},
	}

	types := Types(records)
	if len(types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(types))
	}

	if types[0].SentenceID != "1" || types[1].Text != "b+" {
		t.Errorf("unexpected types %v", types)
	}
}

func TestSelect(t *testing.T) {
	all := All(dictionary())
	if len(all) != 16 {
		t.Errorf("expected 16 analyses, got %d", len(all))
	}

	selected, err := Select(all, []string{"lds_word_character_cut", " sentence_phrase_word"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selected) != 2 || selected[1].Name != "sentence_phrase_word" {
		t.Errorf("unexpected selection %v", Names(selected))
	}

	if !selected[0].HasTypes() || selected[1].HasTypes() {
		t.Errorf("unexpected type tables")
	}

	_, err = Select(all, []string{"nope"})
	if !errors.Is(err, ErrUnknownAnalysis) {
		t.Errorf("expected ErrUnknownAnalysis, got %v", err)
	}
}
