package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return e.Msg
}

func NewInvalidStateError(msg string) error {
	return &InvalidStateError{Msg: msg}
}

func IsInvalidStateError(err error) bool {
	var invalidStateError *InvalidStateError
	ok := errors.As(err, &invalidStateError)
	return ok
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	ok := errors.As(err, &conflictError)
	return ok
}

// StaleWriteError is returned when a budget save carries a version that no
// longer matches the stored aggregate.
type StaleWriteError struct {
	Expected int64
	Actual   int64
}

func (e *StaleWriteError) Error() string {
	return fmt.Sprintf("budget was modified concurrently: version %d expected, stored version is %d", e.Expected, e.Actual)
}

func NewStaleWriteError(expected, actual int64) error {
	return &StaleWriteError{Expected: expected, Actual: actual}
}

func IsStaleWriteError(err error) bool {
	var staleWriteError *StaleWriteError
	ok := errors.As(err, &staleWriteError)
	return ok
}

// DependencyError wraps failures of the record store or the blob backend.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency failure during %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func NewDependencyError(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}

func IsDependencyError(err error) bool {
	var dependencyError *DependencyError
	ok := errors.As(err, &dependencyError)
	return ok
}

var ErrInvalidTransactionType = NewValidationError("Type must be 'income' or 'expense'")
var ErrInvalidTransactionStatus = NewValidationError("Invalid transaction status")
var ErrNonPositiveAmount = NewValidationError("Amount must be greater than zero")
var ErrNegativeAllocation = NewValidationError("Allocated amount must not be negative")
var ErrDuplicateCategory = NewConflictError("Category already exists")
var ErrCategoryNotFound = NewNotFoundError("Category not found")
var ErrTransactionNotFound = NewNotFoundError("Transaction not found")
var ErrReimbursementNotFound = NewNotFoundError("Reimbursement request not found")
var ErrReimbursementNotPending = NewInvalidStateError("Reimbursement request is not pending")
var ErrApprovedReimbursementDelete = NewConflictError("Approved reimbursement cannot be deleted, its transaction is already reconciled")
var ErrCategoryReferenced = NewConflictError("Category is referenced by budget or transactions")
