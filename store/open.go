package store

import (
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/todowing/types"
	"github.com/spf13/afero"
)

// SQLiteFileName is the database file used by the sqlite backend inside the storage dir.
const SQLiteFileName = "todowing.db"

// Open returns the Slots backend selected by cfg.
func Open(cfg types.StorageConfig) (Slots, error) {
	switch cfg.Backend {
	case types.BackendFile, "":
		return NewFileSlots(afero.NewOsFs(), cfg.Dir)
	case types.BackendSQLite:
		return NewSQLiteSlots(filepath.Join(cfg.Dir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s. Supported backends are file, sqlite", cfg.Backend)
	}
}
