package nlreg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/menzerath/stat"
)

var table = stat.Table{
	{Construct: 1, Frequency: 10, AvgConstituentLen: 2.5},
	{Construct: 2, Frequency: 12, AvgConstituentLen: 2},
}

func TestTruncatedProgram(t *testing.T) {
	program, err := TruncatedProgram(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Variables x,y;\n" +
		"Parameter b;\n" +
		"Constant firstConstr = 2.5;\n" +
		"Function y = firstConstr * (x^b);\n" +
		"data;\n" +
		"1\t2.5\n" +
		"2\t2\n"

	if program != expected {
		t.Errorf("expected %q, got %q", expected, program)
	}
}

func TestCompleteProgram(t *testing.T) {
	program, err := CompleteProgram(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(program, "Parameters a,b,c;\nfunction y = a * x^b * exp(-c * x);\ndata;\n") {
		t.Errorf("unexpected program %q", program)
	}

	if _, err := CompleteProgram(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	var calls [][]string
	r := NewRunner("", dir)
	r.Exec = func(_ context.Context, name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	}

	if err := r.Run(context.Background(), "clause_lds_word_cut_xfy", table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(calls))
	}

	program := filepath.Join(dir, "clause_lds_word_cut_xfy_truncated.nlr")
	expected := []string{DefaultCommand, program, "/list", filepath.Join(dir, "clause_lds_word_cut_xfy_truncated_nlreg.lst")}
	if strings.Join(calls[0], " ") != strings.Join(expected, " ") {
		t.Errorf("expected %v, got %v", expected, calls[0])
	}

	if _, err := os.Stat(filepath.Join(dir, "clause_lds_word_cut_xfy_complete.nlr")); err != nil {
		t.Errorf("expected complete program: %v", err)
	}
}

func TestRunSkipsEmptyTable(t *testing.T) {
	r := NewRunner("nlreg", t.TempDir())
	r.Exec = func(context.Context, string, ...string) error {
		t.Fatalf("unexpected run")
		return nil
	}

	if err := r.Run(context.Background(), "empty", stat.Table{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestRunError(t *testing.T) {
	r := NewRunner("nlreg", t.TempDir())
	failure := errors.New("boom")
	r.Exec = func(context.Context, string, ...string) error {
		return failure
	}

	if err := r.Run(context.Background(), "t", table); !errors.Is(err, failure) {
		t.Errorf("expected wrapped failure, got %v", err)
	}
}
