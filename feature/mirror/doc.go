// Package mirror copies the prompt library into a SQL table.
//
// The JSON document stays the system of record. The mirror table
// (prompt_mirror) is rebuilt from it on demand so that other tools can query
// prompts with SQL. Sync upserts every record and deletes rows whose prompt no
// longer exists; Check compares the table layout and row count with the library.
package mirror
