package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Persistence errors
	ErrStore         = fmt.Errorf("store operation failed")
	ErrNotReset      = fmt.Errorf("store has not been reset")
	ErrBuildFailed   = fmt.Errorf("dataset build failed")
	ErrVerifyFailed  = fmt.Errorf("dataset verification failed")
	ErrEmptyDatabase = fmt.Errorf("database contains no seeded data")
)
