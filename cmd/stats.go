package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"bookseed/internal/store"
)

// datasetStats is the summary the stats command reports.
type datasetStats struct {
	Users  int                `json:"users"`
	Admins int                `json:"admins"`
	Books  int                `json:"books"`
	Owners []store.OwnerCount `json:"owners"`
}

// Stats reads counts and the ownership breakdown from an existing database.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	s, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	stats := datasetStats{}
	if stats.Users, err = s.CountUsers(); err != nil {
		return err
	}
	if stats.Admins, err = s.CountAdmins(); err != nil {
		return err
	}
	if stats.Books, err = s.CountBooks(); err != nil {
		return err
	}
	if stats.Owners, err = s.BooksPerOwner(); err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlain("Users:  %d (%d admins)\n", stats.Users, stats.Admins)
	r.writePlain("Books:  %d\n", stats.Books)
	r.writePlainln("Books per owner:")
	for _, oc := range stats.Owners {
		r.writePlain("  %-30s %d\n", oc.Username, oc.Books)
	}
	return nil
}
