package storage

import (
	"errors"

	"github.com/revelaction/menzerath/stat"
	"github.com/revelaction/menzerath/unit"
)

var ErrNotFound = errors.New("table not found")

// Kind distinguishes unit tables from xfy tables.
type Kind int

const (
	Units Kind = iota
	XFY
)

// UnitTable is the named output of one analysis.
type UnitTable struct {
	Name    string
	Header  [4]string
	Records []unit.Record
}

// TableReader defines read operations for table storage
type TableReader interface {
	// Names returns the names of the stored tables of the given kind,
	// sorted.
	Names(kind Kind) ([]string, error)

	// ReadUnits returns a unit table by name
	ReadUnits(name string) (UnitTable, error)

	// ReadXFY returns an xfy table by name
	ReadXFY(name string) (stat.Table, error)
}

// TableWriter defines write operations for table storage. Writing a table
// replaces any table of the same name.
type TableWriter interface {
	WriteUnits(t UnitTable) error
	WriteXFY(name string, t stat.Table) error
}

// TableRepository combines read and write operations
type TableRepository interface {
	TableReader
	TableWriter
}
