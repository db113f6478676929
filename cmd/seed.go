package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"bookseed/internal/dataset"
	"bookseed/internal/formatter"
	"bookseed/internal/shared"
)

// Seed validates the requested population, resets the database, and builds
// the dataset. Validation failures return before any store call is made.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	users := int(cmd.Int("users"))
	booksPerUser := int(cmd.Int("books-per-user"))

	if users < 1 {
		return fmt.Errorf("%w: --users must be at least 1, got %d", shared.ErrInvalidFlag, users)
	}
	if booksPerUser < 1 {
		return fmt.Errorf("%w: --books-per-user must be at least 1, got %d", shared.ErrInvalidFlag, booksPerUser)
	}
	if users > 1000 {
		r.logger.Warn("creating more than 1000 users may take a while", "users", users)
	}

	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = r.config.Seed.RNGSeed
	}

	s, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	r.logger.Info("starting dataset build",
		"db", r.databasePath(cmd), "users", users, "books_per_user", booksPerUser)

	builder := dataset.NewBuilder(s, dataset.Config{
		Users:        users,
		BooksPerUser: booksPerUser,
		AdminPercent: r.config.Seed.AdminPercent,
		EmailDomain:  r.config.Seed.EmailDomain,
	}, dataset.NewRand(seed), r.logger)

	summary, err := builder.Run()
	if err != nil {
		return err
	}

	if base := cmd.String("manifest"); base != "" {
		allUsers, err := s.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to read back seeded accounts: %w", err)
		}
		result, err := formatter.WriteManifest(allUsers, summary, base)
		if err != nil {
			return err
		}
		r.logger.Info("manifest written",
			"credentials", result.CredentialsFile, "summary", result.SummaryFile)
	}

	r.writePlainln("Bootstrap complete")
	r.writePlain("Total users:  %d (%d fixed + %d generated)\n",
		summary.TotalUsers(), summary.DefaultUsers, summary.UsersCreated)
	r.writePlain("Total books:  %d\n", summary.BooksCreated)
	r.writePlain("Admin users:  %d generated + 1 fixed\n", summary.AdminsAmong)
	r.writePlainln("Default credentials: admin/pass1, name1/pass1, name2/pass2")

	return nil
}

// Reset drops and recreates the schema without seeding anything.
func (r *Runner) Reset(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	s, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	r.logger.Info("resetting database schema", "db", r.databasePath(cmd))
	if err := s.ResetAll(); err != nil {
		return err
	}
	if err := s.Commit(); err != nil {
		return err
	}

	r.writePlain("Schema reset; database is empty\n")
	return nil
}
