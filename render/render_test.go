package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/revelaction/menzerath/fit"
	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/treebank"
	"github.com/revelaction/menzerath/unit"
)

func row(id int, form string, head int, deprel string) string {
	return fmt.Sprintf("%d\t%s\t%s\tX\tX\t_\t%d\t%s\t_\t_", id, form, form, head, deprel)
}

func relative(t *testing.T) *treebank.Sentence {
	t.Helper()
	input := "# sent_id = r1\n" + strings.Join([]string{
		row(1, "我们", 3, "nsubj"),
		row(2, "昨天", 3, "obl:tmod"),
		row(3, "看", 5, "acl:relcl"),
		row(4, "的", 3, "mark:rel"),
		row(5, "电影", 7, "nsubj"),
		row(6, "很", 7, "advmod"),
		row(7, "好", 0, "root"),
		row(8, "。", 7, "punct"),
	}, "\n") + "\n"

	tb, err := treebank.Build(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tb.Sentences[0]
}

func TestSentence(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Sentence(relative(t))
	out := buf.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d:\n%s", len(lines), out)
	}

	if lines[0] != "[r1] 我们昨天看的电影很好。" {
		t.Errorf("unexpected title %q", lines[0])
	}

	if lines[9] != "clause 我们+昨天+的+看  我们 | 昨天 看 的" {
		t.Errorf("unexpected clause line %q", lines[9])
	}

	if lines[10] != "clause 电影+很+好  电影 | 很 好" {
		t.Errorf("unexpected clause line %q", lines[10])
	}

	if strings.Contains(out, "\033[") {
		t.Errorf("expected no color codes")
	}
}

func TestSentenceColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = true
	r.Sentence(relative(t))

	if !strings.Contains(buf.String(), Green256+"看"+Off) {
		t.Errorf("expected colored clause head")
	}
}

func TestWriteUnits(t *testing.T) {
	var buf bytes.Buffer
	records := []unit.Record{{SentenceID: "1", Text: "我们+", Construct: 1, Constituent: 2}}

	err := WriteUnits(&buf, [4]string{"sent_id", "phrase_text", "word_n", "character_n"}, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "sent_id\tphrase_text\tword_n\tcharacter_n\n1\t我们+\t1\t2\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestWriteXFY(t *testing.T) {
	var buf bytes.Buffer
	table := stat.Table{{Construct: 1, Frequency: 2, AvgConstituentLen: 2.5}, {Construct: 2.5, Frequency: 10, AvgConstituentLen: 1}}

	if err := WriteXFY(&buf, table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "construct\tfrequency\tavg_constituent_len\n1\t2\t2.5\n2.5\t10\t1\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSummaryAndFit(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Summary(stat.Summary{NumSentences: 2, NumWords: 5, WordsPerSentenceMean: 2.5, WordsPerSentenceDis: map[int]int{4: 1, 1: 1}})
	r.Fit("sentence_clause_word_cut_xfy", []fit.Result{{Model: fit.Power, A: 2, B: -0.3, RSquared: 0.9}})

	out := buf.String()
	for _, s := range []string{"sentences\t2\n", "words/sentence\t2.50\n", "    1 ▇\n", "power", "R²=0.9000"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in output:\n%s", s, out)
		}
	}
}
