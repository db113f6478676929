// Package store implements the SQLite persistence collaborator behind the
// dataset build.
//
// The write path is deliberately narrow: ResetAll drops and recreates the
// schema and opens a transaction, CreateUser/CreateBook buffer inserts inside
// it, and Commit makes everything durable at once. Creates before a reset are
// rejected, which enforces the build's phase order at the storage boundary.
//
// The read path ([SQLite.CountUsers], [SQLite.UserByUsername], and friends)
// serves the verify and stats commands that inspect a committed dataset.
package store
