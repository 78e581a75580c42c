package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Installer errors
	ErrProgramNotFound = fmt.Errorf("program not found on PATH")
	ErrLoadFailed      = fmt.Errorf("launchctl load failed")
	ErrNotInstalled    = fmt.Errorf("agent not installed")

	// Producer errors
	ErrDatabaseUnavailable = fmt.Errorf("finance database unavailable")
	ErrNotificationFailed  = fmt.Errorf("notification delivery failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
