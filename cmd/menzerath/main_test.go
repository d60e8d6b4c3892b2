package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/storage/sqlite/zombiezen"
)

func row(id int, form string, head int, deprel string) string {
	return fmt.Sprintf("%d\t%s\t%s\tX\tX\t_\t%d\t%s\t_\t_", id, form, form, head, deprel)
}

func writeTreebank(t *testing.T) string {
	t.Helper()
	content := "# sent_id = s1\n# text = 他说我来。\n" + strings.Join([]string{
		row(1, "他", 2, "nsubj"),
		row(2, "说", 0, "root"),
		row(3, "我", 4, "nsubj"),
		row(4, "来", 2, "ccomp"),
		row(5, "。", 2, "punct"),
	}, "\n") + "\n\n# sent_id = s2\n# text = 好。\n" +
		row(1, "好", 0, "root") + "\n" +
		row(2, "。", 1, "punct") + "\n"

	path := filepath.Join(t.TempDir(), "test.conllu")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(UI{Out: &out, Err: &errOut}).Run(append([]string{"menzerath"}, args...))
	return out.String(), err
}

func TestExportDirectory(t *testing.T) {
	tb := writeTreebank(t)
	dir := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "export", "--quiet", "--out", dir, tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "of 2 sentences") {
		t.Errorf("unexpected output %q", out)
	}

	for _, name := range []string{
		"sentence_clause_word_cut",
		"sentence_clause_word_cut_xfy",
		"sentence_clause_word_cut_xfy_weighted",
		"lds_word_character_cut_type",
		"lds_word_character_cut_type_xfy_weighted",
	} {
		if _, err := os.Stat(filepath.Join(dir, name+".txt")); err != nil {
			t.Errorf("expected table %s: %v", name, err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "word_character_component_token.txt")); !os.IsNotExist(err) {
		t.Errorf("expected no component table without character metadata")
	}

	content, err := os.ReadFile(filepath.Join(dir, "sentence_clause_word_cut_xfy.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "construct\tfrequency\tavg_constituent_len\n1\t1\t1\n2\t1\t2\n"
	if string(content) != expected {
		t.Errorf("expected %q, got %q", expected, string(content))
	}
}

func TestExportSQLite(t *testing.T) {
	tb := writeTreebank(t)
	db := filepath.Join(t.TempDir(), "tables.db")

	_, err := run(t, "export", "--quiet", "--out", db, "--analysis", "clause_lds_word_cut", tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool, err := zombiezen.NewPool(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer pool.Close()

	names, err := zombiezen.NewTableStore(pool).Names(storage.XFY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(names) != 2 || names[0] != "clause_lds_word_cut_xfy" {
		t.Errorf("unexpected xfy tables %v", names)
	}
}

func TestExportUnknownAnalysis(t *testing.T) {
	tb := writeTreebank(t)

	_, err := run(t, "export", "--quiet", "--out", t.TempDir(), "--analysis", "nope", tb)
	if err == nil {
		t.Fatalf("expected error for unknown analysis")
	}
}

func TestFit(t *testing.T) {
	tb := writeTreebank(t)
	dir := t.TempDir()

	if _, err := run(t, "export", "--quiet", "--out", dir, tb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := run(t, "fit", "--out", dir, "sentence_clause_word_cut_xfy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "truncated") || !strings.Contains(out, "power") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSentenceAndStat(t *testing.T) {
	tb := writeTreebank(t)

	out, err := run(t, "sentence", tb, "s2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "[s2] 好。\n") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "sentence", tb, "s9"); err == nil {
		t.Errorf("expected error for unknown sentence")
	}

	out, err = run(t, "stat", tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "clauses\t3\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestAnalysesAndVersion(t *testing.T) {
	out, err := run(t, "analyses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 16 {
		t.Errorf("expected 16 analyses, got %d", n)
	}

	out, err = run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "menzerath version dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "version"); err == nil {
		t.Errorf("expected error for invalid log level")
	}
}
