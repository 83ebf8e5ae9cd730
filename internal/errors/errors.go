package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/wellday/internal/logger"
)

var (
	// ErrInvalidMetric is returned when a wellness metric is missing or outside 1..5.
	// Values are never clamped.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrMissingResource is returned when the support catalog cannot resolve every
	// recommendation outcome. It is a configuration error and callers treat it as fatal.
	ErrMissingResource = errors.New("missing support resource")

	// ErrPermissionUnavailable is returned when notification delivery is attempted
	// without a granted permission.
	ErrPermissionUnavailable = errors.New("notification permission unavailable")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
