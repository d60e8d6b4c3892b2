package filesystem

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/menzerath/render"
	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/storage"
)

// Ext is the extension of table files.
const Ext = ".txt"

// TableStore keeps every table in its own tab separated file <name>.txt
// under root.
type TableStore struct {
	root string
}

var _ storage.TableRepository = (*TableStore)(nil)

// NewTableStore creates root if it does not exist.
func NewTableStore(root string) (*TableStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	return &TableStore{root: root}, nil
}

func (ts *TableStore) path(name string) string {
	return filepath.Join(ts.root, name+Ext)
}

func (ts *TableStore) Names(kind storage.Kind) ([]string, error) {
	files, err := os.ReadDir(ts.root)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	names := []string{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != Ext {
			continue
		}

		name := strings.TrimSuffix(file.Name(), Ext)
		k, err := ts.kind(name)
		if err != nil {
			return nil, err
		}

		if k == kind {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// kind tells the tables apart by their header line.
func (ts *TableStore) kind(name string) (storage.Kind, error) {
	f, err := os.Open(ts.path(name))
	if err != nil {
		return 0, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return storage.Units, nil
	}

	if isXFYHeader(strings.Split(strings.TrimRight(line, "\r\n"), "\t")) {
		return storage.XFY, nil
	}
	return storage.Units, nil
}

func (ts *TableStore) ReadUnits(name string) (storage.UnitTable, error) {
	f, err := os.Open(ts.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return storage.UnitTable{}, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
		}
		return storage.UnitTable{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	t, err := readUnits(f)
	if err != nil {
		return storage.UnitTable{}, fmt.Errorf("%s: %w", name, err)
	}

	t.Name = name
	return t, nil
}

func (ts *TableStore) ReadXFY(name string) (stat.Table, error) {
	f, err := os.Open(ts.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
		}
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	t, err := readXFY(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

func (ts *TableStore) WriteUnits(t storage.UnitTable) error {
	return ts.write(t.Name, func(w *bufio.Writer) error {
		return render.WriteUnits(w, t.Header, t.Records)
	})
}

func (ts *TableStore) WriteXFY(name string, t stat.Table) error {
	return ts.write(name, func(w *bufio.Writer) error {
		return render.WriteXFY(w, t)
	})
}

func (ts *TableStore) write(name string, fn func(w *bufio.Writer) error) error {
	f, err := os.Create(ts.path(name))
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return f.Close()
}
