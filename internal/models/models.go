package models

import (
	"fmt"
	"strings"
	"unicode"
)

// User represents a test account. Passwords are intentionally plaintext:
// downstream test fixtures authenticate with the literal values.
type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    string  `json:"email"`
	Admin    bool    `json:"admin"`
	Books    []*Book `json:"books,omitempty"`
}

// Book represents a document owned by a single user. Titles double as
// lookup keys for the whole dataset, so they must be non-empty and printable.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Secret string `json:"secret"`
	UserID string `json:"user_id"`
}

// Validate checks that the user carries everything the schema requires.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("user validation: username is empty")
	}
	if u.Password == "" {
		return fmt.Errorf("user validation: password is empty for %q", u.Username)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("user validation: malformed email %q for %q", u.Email, u.Username)
	}
	return nil
}

// Validate checks that the book has a usable title and an owner.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("book validation: title is empty")
	}
	for _, r := range b.Title {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("book validation: title %q contains non-printable characters", b.Title)
		}
	}
	if b.UserID == "" {
		return fmt.Errorf("book validation: %q has no owner", b.Title)
	}
	return nil
}
