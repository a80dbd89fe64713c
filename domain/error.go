// Package domain defines error types for the order system.
package domain

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a product cannot be constructed
// from the given arguments
type InvalidArgumentError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidArgumentError
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// ProductNotFoundError is returned when a catalog has no product with the given name
type ProductNotFoundError struct {
	Name string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// DuplicateProductError is returned when a catalog already holds a product with the same name
type DuplicateProductError struct {
	Name string
}

// Error implements the error interface for DuplicateProductError
func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product: name=%s already exists", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateProductError) Is(target error) bool {
	_, ok := target.(*DuplicateProductError)
	return ok
}

// ListenerError wraps the error of the status listener that halted a broadcast.
// Index is the listener's registration position.
type ListenerError struct {
	Status string
	Index  int
	Err    error
}

// Error implements the error interface for ListenerError
func (e *ListenerError) Error() string {
	return fmt.Sprintf("status listener %d failed for status %q: %v", e.Index, e.Status, e.Err)
}

// Unwrap exposes the listener's own error
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors with context

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(field, reason string, value interface{}) error {
	return &InvalidArgumentError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(name string) error {
	return &ProductNotFoundError{Name: name}
}

// NewDuplicateProductError creates a new DuplicateProductError
func NewDuplicateProductError(name string) error {
	return &DuplicateProductError{Name: name}
}

// Type assertion helpers for use with errors.As()

// IsInvalidArgumentError checks if an error is an InvalidArgumentError
func IsInvalidArgumentError(err error) bool {
	var iae *InvalidArgumentError
	return errors.As(err, &iae)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsDuplicateProductError checks if an error is a DuplicateProductError
func IsDuplicateProductError(err error) bool {
	var dpe *DuplicateProductError
	return errors.As(err, &dpe)
}

// IsListenerError checks if an error came from a failing status listener
func IsListenerError(err error) bool {
	var le *ListenerError
	return errors.As(err, &le)
}
