package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/muhammadheryan/drims/constant"
	"github.com/shopspring/decimal"
)

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the error type but replaces the user facing message.
func SetCustomErrorMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// Typed is implemented by every error the application layer returns on purpose.
type Typed interface {
	error
	Type() constant.ErrorType
}

// TypeOf resolves the ErrorType carried by err, ErrInternal for anything untyped.
func TypeOf(err error) constant.ErrorType {
	if err == nil {
		return constant.Successful
	}
	var t Typed
	if stderrors.As(err, &t) {
		return t.Type()
	}
	return constant.ErrInternal
}

// ValidationError collects every rejected field of one submission.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Type() constant.ErrorType { return constant.ErrValidationFailed }

// StaleVersionError reports a conditional update that matched no row.
type StaleVersionError struct {
	Entity          string
	Key             string
	ExpectedVersion int64
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("%s %s: stale version %d, record was modified by another transaction", e.Entity, e.Key, e.ExpectedVersion)
}

func (e *StaleVersionError) Type() constant.ErrorType { return constant.ErrStaleVersion }

type InsufficientStockError struct {
	ItemID        uint64
	ItemName      string
	WarehouseID   uint64
	WarehouseName string
	Need          decimal.Decimal
	Available     decimal.Decimal
	// Aggregate is set when the Inventory row, not the batch, was short.
	Aggregate bool
}

func (e *InsufficientStockError) Error() string {
	if e.Aggregate {
		return fmt.Sprintf("Insufficient warehouse inventory for %s in %s: need %s, available %s",
			e.ItemName, e.WarehouseName, e.Need.String(), e.Available.String())
	}
	return fmt.Sprintf("Insufficient usable stock for %s in %s: need %s, available %s. Please adjust quantities and try again.",
		e.ItemName, e.WarehouseName, e.Need.String(), e.Available.String())
}

func (e *InsufficientStockError) Type() constant.ErrorType { return constant.ErrInsufficientStock }

// ConsistencyError signals stored quantities that contradict each other.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string { return e.Message }

func (e *ConsistencyError) Type() constant.ErrorType { return constant.ErrInconsistentReservation }

// DispatchError is a rejected dispatch that is neither a stock shortage nor a consistency problem.
type DispatchError struct {
	Message string
}

func (e *DispatchError) Error() string { return e.Message }

func (e *DispatchError) Type() constant.ErrorType { return constant.ErrDispatch }

// IsDispatchError reports whether err belongs to the dispatch failure family.
func IsDispatchError(err error) bool {
	var de *DispatchError
	var ce *ConsistencyError
	var ie *InsufficientStockError
	return stderrors.As(err, &de) || stderrors.As(err, &ce) || stderrors.As(err, &ie)
}

type InvalidActorError struct {
	Actor string
}

func (e *InvalidActorError) Error() string {
	return fmt.Sprintf("acting user must have a non-empty user name for audit tracking, got %q", e.Actor)
}

func (e *InvalidActorError) Type() constant.ErrorType { return constant.ErrInvalidActor }

type ItemNotFoundError struct {
	ItemID uint64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ItemID)
}

func (e *ItemNotFoundError) Type() constant.ErrorType { return constant.ErrItemNotFound }
