// Package models defines the entities seeded into the test database.
//
// The dataset is built once per run and handed to the store wholesale:
//   - [User] : a test account with a run-unique login handle and a
//     plaintext password the downstream harness logs in with
//   - [Book] : a document owned by exactly one user, with a title that is
//     unique across the entire dataset (not per owner)
//
// Entities are never updated or deleted after creation; the store owns them
// once the build commits.
package models
