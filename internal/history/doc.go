// Package history persists a journal of generation runs in SQLite.
//
// Each successful generation appends one row: run identifier, timestamp,
// output path, cache version token, and section/item counts. The journal is
// observability only; generation never reads it, so deleting the database
// is always safe. Schema changes bump schemaVersion and recreate the table.
package history
