// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the SQLite database (overrides config)",
	}
}

// seedCommand builds the dataset from scratch.
func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Reset the database and seed it with fixed and randomized accounts",
		Flags: []cli.Flag{
			configFlag(),
			dbFlag(),
			&cli.IntFlag{
				Name:  "users",
				Usage: "Number of randomized accounts to create",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "books-per-user",
				Usage: "Books attached to each randomized account",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "RNG seed for a reproducible dataset (0 derives one from the clock)",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Base path for a credentials manifest ({base}_credentials.csv + {base}_summary.json)",
			},
		},
		Action: r.Seed,
	}
}

// verifyCommand checks the consumer contract on an existing dataset.
func verifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a seeded database satisfies the dataset invariants",
		Flags: []cli.Flag{
			configFlag(),
			dbFlag(),
		},
		Action: r.Verify,
	}
}

// statsCommand summarizes an existing dataset.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print counts and ownership breakdown for a seeded database",
		Flags: []cli.Flag{
			configFlag(),
			dbFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Stats,
	}
}

// resetCommand drops and recreates the schema without seeding.
func resetCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Destructively drop and recreate the schema, leaving it empty",
		Flags: []cli.Flag{
			configFlag(),
			dbFlag(),
		},
		Action: r.Reset,
	}
}
