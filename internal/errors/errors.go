package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/tracker/internal/logger"
)

var (
	// ErrNotFound is returned when a tracker id or category title does not exist
	ErrNotFound = errors.New("not found")
	// ErrCategoryExists is returned when a rename would collide with an existing title
	ErrCategoryExists = errors.New("category already exists")
	// ErrPersistence wraps failures of the underlying store (disk, migration, constraint)
	ErrPersistence = errors.New("persistence failure")
	// ErrValidation is returned by input checks at the CLI boundary; the core never re-validates
	ErrValidation = errors.New("validation failed")
	// ErrClosed is returned for mutations submitted after the service shut down
	ErrClosed = errors.New("tracker service closed")
)

// OpError records the operation and the entity an error happened on.
type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// NotFound builds an ErrNotFound for the given operation and entity key.
func NotFound(op, resource, key string) error {
	return &OpError{Op: op, Resource: resource, Key: key, Err: ErrNotFound}
}

// Exists builds an ErrCategoryExists for the given title.
func Exists(op, title string) error {
	return &OpError{Op: op, Resource: "category", Key: title, Err: ErrCategoryExists}
}

// Persistence classifies a driver error as ErrPersistence. Errors that already carry a
// domain sentinel are returned unchanged so errors.Is keeps working for callers.
func Persistence(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCategoryExists) || errors.Is(err, ErrPersistence) {
		return err
	}
	return &OpError{Op: op, Resource: resource, Err: fmt.Errorf("%w: %w", ErrPersistence, err)}
}

// ValidationError describes bad user input rejected before it reaches the core.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// OrDefault returns def when err is non-nil. It makes falling back to the
// zero/false/empty value an explicit caller decision.
func OrDefault[T any](v T, err error, def T) T {
	if err != nil {
		logger.Debug("falling back to default", "error", err)
		return def
	}
	return v
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
