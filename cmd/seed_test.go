package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookseed/internal/shared"
	tu "bookseed/internal/testing"
)

func TestSeedCommand(t *testing.T) {
	t.Run("Rejects Zero Users", func(t *testing.T) {
		r, _ := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		err := runCommand(t, r, "seed", "--db", dbPath, "--users", "0")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Fatalf("expected ErrInvalidFlag, got %v", err)
		}
		if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
			t.Error("database should not be touched on invalid flags")
		}
	})

	t.Run("Rejects Zero Books Per User", func(t *testing.T) {
		r, _ := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		err := runCommand(t, r, "seed", "--db", dbPath, "--books-per-user", "0")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Fatalf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("Builds And Verifies", func(t *testing.T) {
		r, buf := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		if err := runCommand(t, r, "seed", "--db", dbPath,
			"--users", "5", "--books-per-user", "2", "--seed", "42"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Bootstrap complete") {
			t.Errorf("missing completion banner: %q", out)
		}
		if !strings.Contains(out, "Total users:  8 (3 fixed + 5 generated)") {
			t.Errorf("unexpected user summary: %q", out)
		}
		if !strings.Contains(out, "Total books:  10") {
			t.Errorf("unexpected book summary: %q", out)
		}
		if !strings.Contains(out, "admin/pass1") {
			t.Errorf("missing default credentials line: %q", out)
		}

		buf.Reset()
		if err := runCommand(t, r, "verify", "--db", dbPath); err != nil {
			t.Fatalf("verify failed on fresh dataset: %v", err)
		}
		if !strings.Contains(buf.String(), "8 users, 10 books") {
			t.Errorf("unexpected verify output: %q", buf.String())
		}
	})

	t.Run("Reseeding Replaces The Dataset", func(t *testing.T) {
		r, buf := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		for i := 0; i < 2; i++ {
			buf.Reset()
			if err := runCommand(t, r, "seed", "--db", dbPath,
				"--users", "4", "--books-per-user", "3", "--seed", "7"); err != nil {
				t.Fatalf("seed run %d failed: %v", i+1, err)
			}
		}
		if !strings.Contains(buf.String(), "Total users:  7 (3 fixed + 4 generated)") {
			t.Errorf("second run should produce the same counts: %q", buf.String())
		}
	})

	t.Run("Writes Manifest", func(t *testing.T) {
		r, _ := newTestRunner(t)
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test.db")
		base := filepath.Join(tmpDir, "dataset")

		if err := runCommand(t, r, "seed", "--db", dbPath,
			"--users", "3", "--books-per-user", "1", "--manifest", base); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		tu.AssertFileExists(t, base+"_credentials.csv")
		tu.AssertFileExists(t, base+"_summary.json")

		creds := tu.MustReadFile(t, base+"_credentials.csv")
		if !strings.Contains(creds, "admin,pass1,admin@mail.com,true") {
			t.Errorf("credentials manifest missing fixed admin: %q", creds)
		}
		// Header plus 3 fixed plus 3 generated accounts.
		if lines := strings.Count(strings.TrimSpace(creds), "\n") + 1; lines != 7 {
			t.Errorf("expected 7 manifest lines, got %d", lines)
		}
	})
}

func TestVerifyCommand(t *testing.T) {
	t.Run("Detects Tampered Fixed Account", func(t *testing.T) {
		r, _ := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		if err := runCommand(t, r, "seed", "--db", dbPath, "--users", "3", "--books-per-user", "1"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		db, err := shared.NewDatabase(dbPath)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.Exec(`UPDATE users SET password = 'changed' WHERE username = 'admin'`); err != nil {
			t.Fatalf("tamper failed: %v", err)
		}
		db.Close()

		if err := runCommand(t, r, "verify", "--db", dbPath); !errors.Is(err, shared.ErrVerifyFailed) {
			t.Errorf("expected ErrVerifyFailed, got %v", err)
		}
	})

	t.Run("Detects Missing Fixed Account", func(t *testing.T) {
		r, _ := newTestRunner(t)
		dbPath := filepath.Join(t.TempDir(), "test.db")

		if err := runCommand(t, r, "seed", "--db", dbPath, "--users", "3", "--books-per-user", "1"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		db, err := shared.NewDatabase(dbPath)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.Exec(`DELETE FROM books WHERE user_id IN (SELECT id FROM users WHERE username = 'name2')`); err != nil {
			t.Fatalf("tamper failed: %v", err)
		}
		if _, err := db.Exec(`DELETE FROM users WHERE username = 'name2'`); err != nil {
			t.Fatalf("tamper failed: %v", err)
		}
		db.Close()

		if err := runCommand(t, r, "verify", "--db", dbPath); !errors.Is(err, shared.ErrVerifyFailed) {
			t.Errorf("expected ErrVerifyFailed, got %v", err)
		}
	})
}

func TestStatsCommand(t *testing.T) {
	r, buf := newTestRunner(t)
	dbPath := filepath.Join(t.TempDir(), "test.db")

	if err := runCommand(t, r, "seed", "--db", dbPath,
		"--users", "4", "--books-per-user", "2", "--seed", "11"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("Plain Output", func(t *testing.T) {
		buf.Reset()
		if err := runCommand(t, r, "stats", "--db", dbPath); err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Users:  7") {
			t.Errorf("unexpected user count: %q", out)
		}
		if !strings.Contains(out, "Books:  8") {
			t.Errorf("unexpected book count: %q", out)
		}
		if !strings.Contains(out, "Books per owner:") {
			t.Errorf("missing ownership breakdown: %q", out)
		}
	})

	t.Run("JSON Output", func(t *testing.T) {
		buf.Reset()
		if err := runCommand(t, r, "stats", "--db", dbPath, "--json"); err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		out := buf.String()
		for _, key := range []string{`"users"`, `"admins"`, `"books"`, `"owners"`} {
			if !strings.Contains(out, key) {
				t.Errorf("stats JSON missing %s: %q", key, out)
			}
		}
	})
}

func TestResetCommand(t *testing.T) {
	r, buf := newTestRunner(t)
	dbPath := filepath.Join(t.TempDir(), "test.db")

	if err := runCommand(t, r, "seed", "--db", dbPath, "--users", "3", "--books-per-user", "1"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	buf.Reset()
	if err := runCommand(t, r, "reset", "--db", dbPath); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Schema reset; database is empty") {
		t.Errorf("unexpected reset output: %q", buf.String())
	}

	buf.Reset()
	if err := runCommand(t, r, "stats", "--db", dbPath); err != nil {
		t.Fatalf("stats after reset failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Users:  0") {
		t.Errorf("expected empty dataset after reset: %q", buf.String())
	}
}
