package zombiezen

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/unit"
)

func newStore(t *testing.T) *TableStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "tables.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return NewTableStore(pool)
}

var units = storage.UnitTable{
	Name:   "clause_lds_word_cut",
	Header: [4]string{"sent_id", "clause_text", "lds_n", "word_n"},
	Records: []unit.Record{
		{SentenceID: "1", Text: "看+我们+昨天+的+", Construct: 2, Constituent: 4},
		{SentenceID: "1", Text: "好+电影+很+", Construct: 2, Constituent: 3},
	},
}

func TestUnits(t *testing.T) {
	ts := newStore(t)

	if err := ts.WriteUnits(units); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// rewriting replaces the table
	if err := ts.WriteUnits(units); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ts.ReadUnits(units.Name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Header != units.Header {
		t.Errorf("expected header %v, got %v", units.Header, got.Header)
	}

	if len(got.Records) != 2 || got.Records[0] != units.Records[0] {
		t.Errorf("unexpected records %v", got.Records)
	}

	names, err := ts.Names(storage.Units)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != units.Name {
		t.Errorf("unexpected names %v", names)
	}
}

func TestXFY(t *testing.T) {
	ts := newStore(t)
	table := stat.Table{
		{Construct: 1, Frequency: 12, AvgConstituentLen: 2},
		{Construct: 2.4, Frequency: 5, AvgConstituentLen: 1.5},
	}

	if err := ts.WriteXFY("clause_lds_word_cut_xfy", table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ts.ReadXFY("clause_lds_word_cut_xfy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 || got[1] != table[1] {
		t.Errorf("unexpected table %v", got)
	}

	names, err := ts.Names(storage.XFY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected 1 xfy table, got %v", names)
	}
}

func TestNotFound(t *testing.T) {
	ts := newStore(t)

	if _, err := ts.ReadUnits("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := ts.ReadXFY("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
