package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/drims/constant"
	cerr "github.com/muhammadheryan/drims/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constant.ErrorType
	}{
		{name: "nil", err: nil, want: constant.Successful},
		{name: "untyped", err: stderrors.New("boom"), want: constant.ErrInternal},
		{name: "custom", err: cerr.SetCustomError(constant.ErrNotFound), want: constant.ErrNotFound},
		{name: "wrapped stale", err: fmt.Errorf("update: %w", &cerr.StaleVersionError{Entity: "inventory"}), want: constant.ErrStaleVersion},
		{name: "insufficient", err: &cerr.InsufficientStockError{}, want: constant.ErrInsufficientStock},
		{name: "validation", err: cerr.NewValidationError([]string{"a"}), want: constant.ErrValidationFailed},
		{name: "consistency", err: &cerr.ConsistencyError{Message: "x"}, want: constant.ErrInconsistentReservation},
		{name: "actor", err: &cerr.InvalidActorError{}, want: constant.ErrInvalidActor},
		{name: "item", err: &cerr.ItemNotFoundError{ItemID: 1}, want: constant.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cerr.TypeOf(tt.err))
		})
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &cerr.InsufficientStockError{
		ItemName:      "Rice",
		WarehouseName: "Kingston",
		Need:          decimal.NewFromInt(50),
		Available:     decimal.NewFromInt(30),
	}
	assert.Contains(t, err.Error(), "Rice")
	assert.Contains(t, err.Error(), "Kingston")
	assert.Contains(t, err.Error(), "need 50, available 30")

	err.Aggregate = true
	assert.Contains(t, err.Error(), "Insufficient warehouse inventory")
}

func TestIsDispatchError(t *testing.T) {
	assert.True(t, cerr.IsDispatchError(&cerr.DispatchError{Message: "x"}))
	assert.True(t, cerr.IsDispatchError(&cerr.ConsistencyError{Message: "x"}))
	assert.True(t, cerr.IsDispatchError(fmt.Errorf("wrap: %w", &cerr.InsufficientStockError{})))
	assert.False(t, cerr.IsDispatchError(&cerr.StaleVersionError{}))
}

func TestMySQLClassification(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	assert.True(t, cerr.IsDuplicateEntry(dup))
	assert.False(t, cerr.IsLockWaitTimeout(dup))

	assert.True(t, cerr.IsLockWaitTimeout(&mysql.MySQLError{Number: 1205}))
	assert.True(t, cerr.IsDeadlock(&mysql.MySQLError{Number: 1213}))
	assert.False(t, cerr.IsDeadlock(stderrors.New("other")))
}

func TestCustomErrorMessage(t *testing.T) {
	err := cerr.SetCustomErrorMessage(constant.ErrNotFound, "Package #9 not found")
	assert.Equal(t, "Package #9 not found", err.Error())
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], err.ErrorCode())
	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrInternal], cerr.SetCustomError(constant.ErrInternal).Error())
}

func TestClassify(t *testing.T) {
	assert.Nil(t, cerr.Classify(nil))

	wrapped := fmt.Errorf("x: %w", &cerr.StaleVersionError{Entity: "reliefpkg"})
	assert.Equal(t, wrapped, cerr.Classify(wrapped))

	assert.Equal(t, constant.ErrLockTimeout, cerr.TypeOf(cerr.Classify(&mysql.MySQLError{Number: 1205})))
	assert.Equal(t, constant.ErrStaleVersion, cerr.TypeOf(cerr.Classify(&mysql.MySQLError{Number: 1213})))
	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(cerr.Classify(stderrors.New("connection reset"))))
}
