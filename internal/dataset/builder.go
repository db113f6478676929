package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"bookseed/internal/models"
	"bookseed/internal/shared"
)

// Store is the persistence collaborator the builder drives. Calls are
// synchronous; atomicity across the population phase, if any, belongs to the
// collaborator's Commit, not to the builder.
type Store interface {
	ResetAll() error
	CreateUser(user *models.User) error
	CreateBook(book *models.Book) error
	Commit() error
}

// State tracks the build's position in its fixed phase order. Any unrecovered
// failure lands in StateFailed, which the CLI surfaces as a nonzero exit.
type State int

const (
	StateUninitialized State = iota
	StateResetting
	StateSeedingDefaults
	StateSeedingPopulation
	StateCommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateResetting:
		return "resetting"
	case StateSeedingDefaults:
		return "seeding defaults"
	case StateSeedingPopulation:
		return "seeding population"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

// Config controls the size and shape of the generated population.
type Config struct {
	Users        int    // randomized accounts to create, on top of the fixed ones
	BooksPerUser int    // books attached to each randomized account
	AdminPercent int    // chance (percent) a randomized account is an admin
	EmailDomain  string // forces one email domain when non-empty
}

// Summary reports what a completed build produced.
type Summary struct {
	DefaultUsers int           `json:"default_users"`
	UsersCreated int           `json:"users_created"`
	BooksCreated int           `json:"books_created"`
	AdminsAmong  int           `json:"admins_among_created"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// TotalUsers is the full account count including the fixed defaults.
func (s *Summary) TotalUsers() int { return s.DefaultUsers + s.UsersCreated }

// DefaultUsers returns fresh copies of the three fixed accounts every
// successful build contains: one admin and two regular users. Downstream test
// fixtures hardcode these exact credentials, so the literals never change.
func DefaultUsers() []*models.User {
	return []*models.User{
		{Username: "admin", Password: "pass1", Email: "admin@mail.com", Admin: true},
		{Username: "name1", Password: "pass1", Email: "mail1@mail.com", Admin: false},
		{Username: "name2", Password: "pass2", Email: "mail2@mail.com", Admin: false},
	}
}

// NewRand builds the run's random source. Seed 0 derives one from the clock;
// any other value reproduces the exact same dataset on every run.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// Builder runs the single-threaded reset → seed → commit sequence against a
// Store. A Builder is good for exactly one Run; invoke a fresh one per build
// so no used-set state leaks between runs.
type Builder struct {
	store  Store
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
	state  State
}

// NewBuilder creates a Builder. A nil rng gets a clock-seeded source and a
// nil logger the shared default.
func NewBuilder(store Store, cfg Config, rng *rand.Rand, logger *log.Logger) *Builder {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Builder{
		store:  store,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		state:  StateUninitialized,
	}
}

// State reports the builder's current phase.
func (b *Builder) State() State { return b.state }

// Run executes the whole build. The phase order is fixed: destructive reset,
// fixed accounts, randomized population, single commit. Every failure is
// fatal; a failure after the reset leaves a partially seeded store and the
// only recovery is re-running from the top.
func (b *Builder) Run() (*Summary, error) {
	if b.state != StateUninitialized {
		return nil, fmt.Errorf("%w: builder already ran (state %s)", shared.ErrBuildFailed, b.state)
	}
	if b.cfg.Users < 1 || b.cfg.BooksPerUser < 1 {
		return nil, fmt.Errorf("%w: users and books-per-user must be at least 1", shared.ErrInvalidArgument)
	}

	start := time.Now()

	b.state = StateResetting
	b.logger.Info("resetting database schema")
	if err := b.store.ResetAll(); err != nil {
		return nil, b.fail(fmt.Errorf("reset failed: %w", err))
	}

	b.state = StateSeedingDefaults
	usedNames := make(map[string]struct{})
	if err := b.seedDefaults(usedNames); err != nil {
		return nil, b.fail(err)
	}

	b.state = StateSeedingPopulation
	summary, err := b.seedPopulation(usedNames)
	if err != nil {
		return nil, b.fail(err)
	}

	if err := b.store.Commit(); err != nil {
		return nil, b.fail(fmt.Errorf("commit failed: %w", err))
	}

	b.state = StateCommitted
	summary.Elapsed = time.Since(start)
	b.logger.Info("build committed",
		"users", summary.TotalUsers(), "books", summary.BooksCreated, "elapsed", summary.Elapsed)
	return summary, nil
}

// seedDefaults creates the three fixed accounts and reserves their handles.
func (b *Builder) seedDefaults(usedNames map[string]struct{}) error {
	for _, user := range DefaultUsers() {
		if err := b.store.CreateUser(user); err != nil {
			return fmt.Errorf("seeding default user %q: %w", user.Username, err)
		}
		usedNames[user.Username] = struct{}{}
		role := "user"
		if user.Admin {
			role = "admin"
		}
		b.logger.Debug("created default account", "username", user.Username, "role", role)
	}
	b.logger.Info("default accounts created", "count", len(DefaultUsers()))
	return nil
}

// seedPopulation creates the randomized users and their books. Name pairs are
// drawn without replacement while the pools last, then cycled; handles stay
// unique via suffixing either way.
func (b *Builder) seedPopulation(usedNames map[string]struct{}) (*Summary, error) {
	summary := &Summary{DefaultUsers: len(DefaultUsers())}

	titles := NewTitleAllocator(b.rng)
	firsts := samplePool(b.rng, firstNames, b.cfg.Users)
	lasts := samplePool(b.rng, lastNames, b.cfg.Users)

	for i := 0; i < b.cfg.Users; i++ {
		first := firsts[i%len(firsts)]
		last := lasts[i%len(lasts)]

		username := Username(first, last, usedNames)
		usedNames[username] = struct{}{}

		user := &models.User{
			Username: username,
			Password: fmt.Sprintf("pass%d", 1000+b.rng.IntN(9000)),
			Email:    Email(b.rng, username, b.cfg.EmailDomain),
			Admin:    b.rng.IntN(100) < b.cfg.AdminPercent,
		}
		if err := b.store.CreateUser(user); err != nil {
			return nil, fmt.Errorf("seeding user %q: %w", username, err)
		}
		summary.UsersCreated++
		if user.Admin {
			summary.AdminsAmong++
		}

		for j := 0; j < b.cfg.BooksPerUser; j++ {
			title := titles.Allocate(i, summary.BooksCreated)
			book := &models.Book{
				Title:  title,
				Secret: Secret(b.rng, title),
				UserID: user.ID,
			}
			if err := b.store.CreateBook(book); err != nil {
				return nil, fmt.Errorf("seeding book %q for %q: %w", title, username, err)
			}
			user.Books = append(user.Books, book)
			summary.BooksCreated++
		}

		if (i+1)%5 == 0 || i+1 == b.cfg.Users {
			b.logger.Info("seeding progress", "users", i+1, "of", b.cfg.Users)
		}
	}

	return summary, nil
}

// fail records the terminal failed state and wraps the cause.
func (b *Builder) fail(err error) error {
	b.state = StateFailed
	b.logger.Error("build failed", "state", b.state, "error", err)
	return fmt.Errorf("%w: %v", shared.ErrBuildFailed, err)
}
