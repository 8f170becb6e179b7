// Package sqlite records run history in a SQLite database at
// ~/.tecy/data/history.db.
//
// The driver is modernc.org/sqlite, so the binary builds without CGO.
// The schema is created by the numbered scripts in migrations/, applied
// in version order on open; schema_migrations tracks what has run.
// Advisories are stored as a JSON array in a TEXT column.
package sqlite
