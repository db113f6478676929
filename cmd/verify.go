package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"bookseed/internal/dataset"
	"bookseed/internal/shared"
)

// Verify checks the consumer contract on an existing database: the three
// fixed accounts with their literal credentials, distinct login handles,
// globally unique titles, and no orphaned books. Any violation fails the
// command with a nonzero exit.
func (r *Runner) Verify(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	s, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var violations []string

	for _, want := range dataset.DefaultUsers() {
		got, err := s.UserByUsername(want.Username)
		if err != nil {
			violations = append(violations, fmt.Sprintf("fixed account %q missing: %v", want.Username, err))
			continue
		}
		if got.Password != want.Password {
			violations = append(violations, fmt.Sprintf("fixed account %q has wrong password", want.Username))
		}
		if got.Email != want.Email {
			violations = append(violations, fmt.Sprintf("fixed account %q has wrong email", want.Username))
		}
		if got.Admin != want.Admin {
			violations = append(violations, fmt.Sprintf("fixed account %q has wrong admin flag", want.Username))
		}
	}

	if dupes, err := s.DuplicateUsernames(); err != nil {
		return err
	} else if len(dupes) > 0 {
		violations = append(violations, fmt.Sprintf("duplicate usernames: %v", dupes))
	}

	if dupes, err := s.DuplicateTitles(); err != nil {
		return err
	} else if len(dupes) > 0 {
		violations = append(violations, fmt.Sprintf("duplicate book titles: %v", dupes))
	}

	if orphans, err := s.CountOrphanBooks(); err != nil {
		return err
	} else if orphans > 0 {
		violations = append(violations, fmt.Sprintf("%d books have no owner", orphans))
	}

	userCount, err := s.CountUsers()
	if err != nil {
		return err
	}
	if userCount < len(dataset.DefaultUsers()) {
		violations = append(violations, fmt.Sprintf("only %d accounts present", userCount))
	}

	if len(violations) > 0 {
		for _, v := range violations {
			r.logger.Error("invariant violated", "detail", v)
		}
		return fmt.Errorf("%w: %d violation(s)", shared.ErrVerifyFailed, len(violations))
	}

	bookCount, err := s.CountBooks()
	if err != nil {
		return err
	}

	r.writePlain("✓ Dataset verified: %d users, %d books, fixed accounts intact\n", userCount, bookCount)
	return nil
}
