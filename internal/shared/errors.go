package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library errors
	ErrLibraryFull  = fmt.Errorf("library is full")
	ErrEmptyLibrary = fmt.Errorf("library is empty")

	// Input validation errors
	ErrEmptyInput      = fmt.Errorf("input cannot be empty")
	ErrInvalidTempo    = fmt.Errorf("tempo out of range")
	ErrInvalidEnergy   = fmt.Errorf("invalid energy level")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
