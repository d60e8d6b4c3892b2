package main

import (
	"path/filepath"
	"strings"

	"github.com/revelaction/menzerath/hanzi"
	"github.com/revelaction/menzerath/storage"
	"github.com/revelaction/menzerath/storage/filesystem"
	"github.com/revelaction/menzerath/storage/sqlite/zombiezen"
)

var sqliteExts = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// NewTableRepository returns a SQLite store for database file paths and a
// directory store otherwise.
func NewTableRepository(p *Pool, path string) (storage.TableRepository, error) {
	if !sqliteExts[strings.ToLower(filepath.Ext(path))] {
		return filesystem.NewTableStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewTableStore(pool), nil
}

// DictionaryOptions locate the character metadata files.
type DictionaryOptions struct {
	HZInfo  string
	IDS     string
	Maximal bool
}

// loadDictionary returns nil when no BLCU file is given. With a CHISE file
// the components come from CHISE and the strokes from BLCU.
func loadDictionary(opts DictionaryOptions) (hanzi.Dictionary, error) {
	if opts.HZInfo == "" {
		return nil, nil
	}

	d, err := hanzi.LoadBLCU(opts.HZInfo)
	if err != nil {
		return nil, err
	}

	if opts.IDS != "" {
		chise, err := hanzi.LoadCHISE(opts.IDS)
		if err != nil {
			return nil, err
		}
		d = chise.WithStrokes(d)
	}

	if opts.Maximal {
		d = d.Maximal()
	}

	return d, nil
}
