package errors

import (
	"errors"
	"fmt"
)

// Common application error types
var (
	// ErrNotFound indicates the certificate id is absent from the store
	ErrNotFound = errors.New("certificate not found")

	// ErrStatusConflict indicates an operation is not valid for the
	// certificate's current status (e.g. renewing a revoked certificate)
	ErrStatusConflict = errors.New("certificate status conflict")

	// ErrInvalidRequest indicates malformed input was provided
	ErrInvalidRequest = errors.New("invalid request")
)

// StoreError represents a backend transport or command failure
type StoreError struct {
	Operation string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Operation, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error
func NewStoreError(operation string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Err:       err,
	}
}

// SerializationError represents a record encode/decode failure. Seeing
// one on the read path indicates store corruption.
type SerializationError struct {
	Operation string
	Err       error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization %s failed: %v", e.Operation, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSerializationError creates a new serialization error
func NewSerializationError(operation string, err error) *SerializationError {
	return &SerializationError{
		Operation: operation,
		Err:       err,
	}
}

// CryptoError represents a key generation, signing, or PEM parsing failure
type CryptoError struct {
	Operation string
	Err       error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("crypto %s failed: %v", e.Operation, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new crypto error
func NewCryptoError(operation string, err error) *CryptoError {
	return &CryptoError{
		Operation: operation,
		Err:       err,
	}
}

// IOError represents a filesystem read/write failure
type IOError struct {
	Path      string
	Operation string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io %s %s failed: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new io error
func NewIOError(path, operation string, err error) *IOError {
	return &IOError{
		Path:      path,
		Operation: operation,
		Err:       err,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if an error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if an error can be assigned to target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
