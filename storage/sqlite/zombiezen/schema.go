package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

const schemaScript = "sql/tables.sql"

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchema creates the unit and xfy tables if they do not exist.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile(schemaScript)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", schemaScript, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", schemaScript, err)
	}

	return nil
}
