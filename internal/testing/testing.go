// package testing contains shared testing utilities
package testing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"bookseed/internal/models"
)

// RecordingStore is an in-memory test double for the builder's persistence
// collaborator. It records every call and can be told to fail at a specific
// step to exercise the fatal error paths.
type RecordingStore struct {
	ResetCalls int
	Users      []*models.User
	Books      []*models.Book
	Commits    int

	// FailOn makes the named operation ("reset", "user", "book", "commit")
	// return an error.
	FailOn string
	// FailAfterUsers delays a "user" failure until that many users were
	// already created, simulating a mid-population fault.
	FailAfterUsers int

	nextID int
}

func (s *RecordingStore) ResetAll() error {
	if s.FailOn == "reset" {
		return errors.New("injected reset failure")
	}
	s.ResetCalls++
	s.Users = nil
	s.Books = nil
	return nil
}

func (s *RecordingStore) CreateUser(user *models.User) error {
	if s.FailOn == "user" && len(s.Users) >= s.FailAfterUsers {
		return errors.New("injected user create failure")
	}
	s.nextID++
	user.ID = fmt.Sprintf("user-%d", s.nextID)
	s.Users = append(s.Users, user)
	return nil
}

func (s *RecordingStore) CreateBook(book *models.Book) error {
	if s.FailOn == "book" {
		return errors.New("injected book create failure")
	}
	s.nextID++
	book.ID = fmt.Sprintf("book-%d", s.nextID)
	s.Books = append(s.Books, book)
	return nil
}

func (s *RecordingStore) Commit() error {
	if s.FailOn == "commit" {
		return errors.New("injected commit failure")
	}
	s.Commits++
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
