package store

import (
	"database/sql"
	"fmt"

	"bookseed/internal/models"
	"bookseed/internal/shared"
)

// SQLite persists users and books in a SQLite database. It assumes
// single-writer access for the duration of a build; external readers looking
// at the database mid-build may see a partially reset or partially seeded
// store, and only committed state is meaningful.
type SQLite struct {
	db *sql.DB
	tx *sql.Tx
}

// New wraps an open database connection. The caller keeps ownership of db's
// lifecycle unless Close is used.
func New(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Open opens the SQLite database at path with the given pool settings and
// wraps it in a store.
func Open(path string, cfg shared.DatabaseConfig) (*SQLite, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, cfg.MaxOpenConns, cfg.MaxIdleConns)
	return New(db), nil
}

// Close rolls back any uncommitted build and closes the database.
func (s *SQLite) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}

// ResetAll destructively drops and recreates the schema, then opens the
// transaction the subsequent creates run in. Irreversible; all prior data is
// gone when it returns.
func (s *SQLite) ResetAll() error {
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil {
			return fmt.Errorf("%w: discarding stale transaction: %v", shared.ErrStore, err)
		}
		s.tx = nil
	}

	if err := shared.ResetSchema(s.db); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStore, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", shared.ErrStore, err)
	}
	s.tx = tx
	return nil
}

// CreateUser inserts a user inside the current build transaction, assigning
// its row ID.
func (s *SQLite) CreateUser(user *models.User) error {
	if s.tx == nil {
		return shared.ErrNotReset
	}

	user.ID = shared.GenerateID()
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStore, err)
	}

	query := `
		INSERT INTO users (id, username, password, email, admin)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.tx.Exec(query, user.ID, user.Username, user.Password, user.Email, user.Admin); err != nil {
		return fmt.Errorf("%w: failed to insert user %q: %v", shared.ErrStore, user.Username, err)
	}
	return nil
}

// CreateBook inserts a book inside the current build transaction, assigning
// its row ID. The owner must already have been created.
func (s *SQLite) CreateBook(book *models.Book) error {
	if s.tx == nil {
		return shared.ErrNotReset
	}

	book.ID = shared.GenerateID()
	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStore, err)
	}

	query := `
		INSERT INTO books (id, title, secret, user_id)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.tx.Exec(query, book.ID, book.Title, book.Secret, book.UserID); err != nil {
		return fmt.Errorf("%w: failed to insert book %q: %v", shared.ErrStore, book.Title, err)
	}
	return nil
}

// Commit makes the whole build durable in one step.
func (s *SQLite) Commit() error {
	if s.tx == nil {
		return shared.ErrNotReset
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit failed: %v", shared.ErrStore, err)
	}
	s.tx = nil
	return nil
}

// ---------------------------------------------------------------------------
// Read side, for verify and stats
// ---------------------------------------------------------------------------

// CountUsers returns the total number of accounts in the committed dataset.
func (s *SQLite) CountUsers() (int, error) {
	return s.countRows("SELECT COUNT(*) FROM users")
}

// CountBooks returns the total number of books in the committed dataset.
func (s *SQLite) CountBooks() (int, error) {
	return s.countRows("SELECT COUNT(*) FROM books")
}

// CountAdmins returns the number of accounts carrying the admin flag.
func (s *SQLite) CountAdmins() (int, error) {
	return s.countRows("SELECT COUNT(*) FROM users WHERE admin = 1")
}

func (s *SQLite) countRows(query string) (int, error) {
	var n int
	if err := s.db.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrStore, err)
	}
	return n, nil
}

// UserByUsername fetches a single account by its login handle.
func (s *SQLite) UserByUsername(username string) (*models.User, error) {
	var u models.User
	query := `SELECT id, username, password, email, admin FROM users WHERE username = ?`
	err := s.db.QueryRow(query, username).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Admin)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %s", username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query user: %v", shared.ErrStore, err)
	}
	return &u, nil
}

// ListUsers returns every account ordered by creation, without books.
func (s *SQLite) ListUsers() ([]*models.User, error) {
	rows, err := s.db.Query(`SELECT id, username, password, email, admin FROM users ORDER BY created_at, username`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query users: %v", shared.ErrStore, err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Admin); err != nil {
			return nil, fmt.Errorf("%w: failed to scan user: %v", shared.ErrStore, err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration error: %v", shared.ErrStore, err)
	}
	return users, nil
}

// DuplicateUsernames returns login handles that appear more than once.
// A healthy dataset returns an empty slice; the schema's UNIQUE constraint
// makes duplicates impossible unless the database was tampered with.
func (s *SQLite) DuplicateUsernames() ([]string, error) {
	return s.duplicates(`SELECT username FROM users GROUP BY username HAVING COUNT(*) > 1`)
}

// DuplicateTitles returns book titles that appear more than once across the
// whole dataset, regardless of owner.
func (s *SQLite) DuplicateTitles() ([]string, error) {
	return s.duplicates(`SELECT title FROM books GROUP BY title HAVING COUNT(*) > 1`)
}

func (s *SQLite) duplicates(query string) ([]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
	}
	defer rows.Close()

	var dupes []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
		}
		dupes = append(dupes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
	}
	return dupes, nil
}

// CountOrphanBooks returns the number of books whose owner row is missing.
// Foreign keys keep this at zero for datasets this tool produced.
func (s *SQLite) CountOrphanBooks() (int, error) {
	return s.countRows(`SELECT COUNT(*) FROM books WHERE user_id NOT IN (SELECT id FROM users)`)
}

// OwnerCount pairs a login handle with how many books it owns.
type OwnerCount struct {
	Username string `json:"username"`
	Books    int    `json:"books"`
}

// BooksPerOwner returns per-account book counts, busiest owners first.
// Accounts without books are included with a zero count.
func (s *SQLite) BooksPerOwner() ([]OwnerCount, error) {
	query := `
		SELECT u.username, COUNT(b.id)
		FROM users u
		LEFT JOIN books b ON b.user_id = u.id
		GROUP BY u.id
		ORDER BY COUNT(b.id) DESC, u.username
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
	}
	defer rows.Close()

	var counts []OwnerCount
	for rows.Next() {
		var oc OwnerCount
		if err := rows.Scan(&oc.Username, &oc.Books); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
		}
		counts = append(counts, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStore, err)
	}
	return counts, nil
}
