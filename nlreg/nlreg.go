// Package nlreg writes program files for the NLREG nonlinear regression tool
// and runs it on xfy tables.
package nlreg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/revelaction/menzerath/stat"
)

// DefaultCommand is the console version of NLREG.
const DefaultCommand = "NLREGCA"

var ErrNoData = errors.New("table has no data rows")

func logger() *slog.Logger {
	return slog.Default().With(slog.String("component", "nlreg"))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeData(b *strings.Builder, t stat.Table) {
	b.WriteString("data;\n")
	for _, r := range t {
		fmt.Fprintf(b, "%s\t%s\n", formatFloat(r.Construct), formatFloat(r.AvgConstituentLen))
	}
}

// TruncatedProgram returns the program of y = y1 * x^b, y1 being the
// constituent length of the first row.
func TruncatedProgram(t stat.Table) (string, error) {
	if len(t) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString("Variables x,y;\n")
	b.WriteString("Parameter b;\n")
	fmt.Fprintf(&b, "Constant firstConstr = %s;\n", formatFloat(t[0].AvgConstituentLen))
	b.WriteString("Function y = firstConstr * (x^b);\n")
	writeData(&b, t)
	return b.String(), nil
}

// CompleteProgram returns the program of y = a * x^b * exp(-c * x).
func CompleteProgram(t stat.Table) (string, error) {
	if len(t) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString("Variables x,y;\n")
	b.WriteString("Parameters a,b,c;\n")
	b.WriteString("function y = a * x^b * exp(-c * x);\n")
	writeData(&b, t)
	return b.String(), nil
}

// Runner writes the programs of a table to Dir and runs Command on each.
type Runner struct {
	Command string
	Dir     string

	// Exec runs one command. It defaults to running the process.
	Exec func(ctx context.Context, name string, args ...string) error
}

func NewRunner(command, dir string) *Runner {
	if command == "" {
		command = DefaultCommand
	}
	return &Runner{Command: command, Dir: dir, Exec: run}
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Programs writes <name>_truncated.nlr and <name>_complete.nlr and returns
// their paths.
func (r *Runner) Programs(name string, t stat.Table) ([]string, error) {
	truncated, err := TruncatedProgram(t)
	if err != nil {
		return nil, err
	}

	complete, err := CompleteProgram(t)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, p := range []struct{ model, program string }{
		{"truncated", truncated},
		{"complete", complete},
	} {
		path := filepath.Join(r.Dir, name+"_"+p.model+".nlr")
		if err := os.WriteFile(path, []byte(p.program), 0o644); err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// ListPath returns the listing file NLREG writes for a program.
func ListPath(program string) string {
	return strings.TrimSuffix(program, filepath.Ext(program)) + "_nlreg.lst"
}

// Run writes the programs of the table and runs NLREG on both. Tables
// without rows are skipped with ErrNoData.
func (r *Runner) Run(ctx context.Context, name string, t stat.Table) error {
	programs, err := r.Programs(name, t)
	if err != nil {
		return err
	}

	for _, p := range programs {
		logger().Debug("running nlreg", slog.String("program", p))
		if err := r.Exec(ctx, r.Command, p, "/list", ListPath(p)); err != nil {
			return fmt.Errorf("nlreg %s: %w", filepath.Base(p), err)
		}
	}

	return nil
}
