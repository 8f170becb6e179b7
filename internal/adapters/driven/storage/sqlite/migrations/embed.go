// Package migrations holds the versioned SQL scripts of the history database.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// FS contains all SQL migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// upSuffix marks the forward script of a migration.
const upSuffix = ".up.sql"

// Migration is one forward schema change.
type Migration struct {
	// Version is the numeric prefix of the file name.
	Version int
	// Name is the file name, such as "001_runs.up.sql".
	Name string
	// Script is the SQL to execute.
	Script string
}

// List returns the up migrations in fsys ordered by version.
// Files without a numeric prefix are ignored.
func List(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, upSuffix) {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", name, err)
		}
		out = append(out, Migration{Version: version, Name: name, Script: string(content)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}
