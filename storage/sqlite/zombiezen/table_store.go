package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/unit"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const headerSeparator = "\t"

// TableStore keeps all tables in one SQLite database.
type TableStore struct {
	pool *sqlitex.Pool
}

var _ storage.TableRepository = (*TableStore)(nil)

func NewTableStore(pool *sqlitex.Pool) *TableStore {
	return &TableStore{pool: pool}
}

func (h *TableStore) Names(kind storage.Kind) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT name FROM unit_tables ORDER BY name"
	if kind == storage.XFY {
		query = "SELECT name FROM xfy_tables ORDER BY name"
	}

	names := []string{}
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

func (h *TableStore) ReadUnits(name string) (storage.UnitTable, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.UnitTable{}, err
	}
	defer h.pool.Put(conn)

	t := storage.UnitTable{Name: name}
	found := false

	err = sqlitex.Execute(conn, "SELECT header FROM unit_tables WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			copy(t.Header[:], strings.Split(stmt.ColumnText(0), headerSeparator))
			found = true
			return nil
		},
	})
	if err != nil {
		return storage.UnitTable{}, err
	}

	if !found {
		return storage.UnitTable{}, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}

	err = sqlitex.Execute(conn, "SELECT sent_id, text, construct, constituent FROM units WHERE table_name = ? ORDER BY seq", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			t.Records = append(t.Records, unit.Record{
				SentenceID:  stmt.ColumnText(0),
				Text:        stmt.ColumnText(1),
				Construct:   stmt.ColumnInt(2),
				Constituent: stmt.ColumnInt(3),
			})
			return nil
		},
	})
	if err != nil {
		return storage.UnitTable{}, err
	}

	return t, nil
}

func (h *TableStore) ReadXFY(name string) (stat.Table, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM xfy_tables WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}

	t := stat.Table{}
	err = sqlitex.Execute(conn, "SELECT construct, frequency, avg_constituent_len FROM xfy_rows WHERE table_name = ? ORDER BY seq", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			t = append(t, stat.Row{
				Construct:         stmt.ColumnFloat(0),
				Frequency:         stmt.ColumnInt(1),
				AvgConstituentLen: stmt.ColumnFloat(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (h *TableStore) WriteUnits(t storage.UnitTable) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	if err = h.delete(conn, "units", "unit_tables", t.Name); err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO unit_tables (name, header) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{t.Name, strings.Join(t.Header[:], headerSeparator)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert table %s: %w", t.Name, err)
	}

	for i, r := range t.Records {
		err = sqlitex.Execute(conn, "INSERT INTO units (table_name, seq, sent_id, text, construct, constituent) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{t.Name, i, r.SentenceID, r.Text, r.Construct, r.Constituent},
		})
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return nil
}

func (h *TableStore) WriteXFY(name string, t stat.Table) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err = h.delete(conn, "xfy_rows", "xfy_tables", name); err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO xfy_tables (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert table %s: %w", name, err)
	}

	for i, r := range t {
		err = sqlitex.Execute(conn, "INSERT INTO xfy_rows (table_name, seq, construct, frequency, avg_constituent_len) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{name, i, r.Construct, r.Frequency, r.AvgConstituentLen},
		})
		if err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	return nil
}

// delete removes a table and its rows.
func (h *TableStore) delete(conn *sqlite.Conn, rows, tables, name string) error {
	err := sqlitex.Execute(conn, fmt.Sprintf("DELETE FROM %s WHERE table_name = ?", rows), &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to delete rows of %s: %w", name, err)
	}

	err = sqlitex.Execute(conn, fmt.Sprintf("DELETE FROM %s WHERE name = ?", tables), &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to delete table %s: %w", name, err)
	}

	return nil
}
