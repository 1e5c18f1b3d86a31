package kv

import (
	"fmt"
	"path/filepath"
)

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Open returns the Store for the named backend. dir is the data directory
// used by the file and sqlite backends; dsn is only read for postgres.
func Open(backend, dir, dsn string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFile(dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "welltrack.db"))
	case BackendPostgres:
		return OpenPostgres(dsn)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", backend)
	}
}
