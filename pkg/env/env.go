// Package env keeps names of environment variables with special significance to
// conslist.
package env

// Environment variables with special significance to conslist.
const (
	// NO_COLOR disables styled output when set to a non-empty value. See
	// https://no-color.org.
	NO_COLOR = "NO_COLOR"
	// TERM is consulted to detect terminals that can't display colors.
	TERM = "TERM"
)
