package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInsufficientStock
	ErrStaleVersion
	ErrInconsistentReservation
	ErrInvalidActor
	ErrItemNotFound
	ErrValidationFailed
	ErrDuplicateIntake
	ErrInvalidDonationStatus
	ErrInvalidIntakeStatus
	ErrInvalidPackageStatus
	ErrInvalidRequestStatus
	ErrLockTimeout
	ErrBatchExists
	ErrWarehouseHasReservedStock
	ErrDispatch
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                   "success",
	ErrInternal:                  "error internal",
	ErrNotFound:                  "data not found",
	ErrInvalidRequest:            "invalid request",
	ErrUnauthorize:               "unauthorize request",
	ErrCredentialExists:          "email or phone already exists",
	ErrInvalidPassword:           "password invalid",
	ErrInsufficientStock:         "insufficient stock",
	ErrStaleVersion:              "record was modified by another user, please reload and try again",
	ErrInconsistentReservation:   "inconsistent reservation state",
	ErrInvalidActor:              "acting user has no usable identity",
	ErrItemNotFound:              "item not found",
	ErrValidationFailed:          "validation failed",
	ErrDuplicateIntake:           "intake already exists for this donation and warehouse",
	ErrInvalidDonationStatus:     "donation is not in verified status",
	ErrInvalidIntakeStatus:       "intake is not awaiting verification",
	ErrInvalidPackageStatus:      "package cannot be dispatched from its current status",
	ErrInvalidRequestStatus:      "relief request does not accept dispatches in its current status",
	ErrLockTimeout:               "timed out waiting for a locked record, please try again",
	ErrBatchExists:               "batch number already exists for this item",
	ErrWarehouseHasReservedStock: "warehouse still holds reserved stock",
	ErrDispatch:                  "dispatch failed",
	ErrForbidden:                 "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                   http.StatusOK,
	ErrInternal:                  http.StatusInternalServerError,
	ErrNotFound:                  http.StatusBadRequest,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrUnauthorize:               http.StatusUnauthorized,
	ErrCredentialExists:          http.StatusBadRequest,
	ErrInvalidPassword:           http.StatusBadRequest,
	ErrInsufficientStock:         http.StatusUnprocessableEntity,
	ErrStaleVersion:              http.StatusConflict,
	ErrInconsistentReservation:   http.StatusConflict,
	ErrInvalidActor:              http.StatusUnauthorized,
	ErrItemNotFound:              http.StatusNotFound,
	ErrValidationFailed:          http.StatusBadRequest,
	ErrDuplicateIntake:           http.StatusConflict,
	ErrInvalidDonationStatus:     http.StatusConflict,
	ErrInvalidIntakeStatus:       http.StatusConflict,
	ErrInvalidPackageStatus:      http.StatusConflict,
	ErrInvalidRequestStatus:      http.StatusConflict,
	ErrLockTimeout:               http.StatusServiceUnavailable,
	ErrBatchExists:               http.StatusConflict,
	ErrWarehouseHasReservedStock: http.StatusBadRequest,
	ErrDispatch:                  http.StatusUnprocessableEntity,
	ErrForbidden:                 http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                   "0000",
	ErrInternal:                  "0001",
	ErrNotFound:                  "0002",
	ErrInvalidRequest:            "0003",
	ErrUnauthorize:               "0004",
	ErrCredentialExists:          "0005",
	ErrInvalidPassword:           "0006",
	ErrInsufficientStock:         "0007",
	ErrStaleVersion:              "0008",
	ErrInconsistentReservation:   "0009",
	ErrInvalidActor:              "0010",
	ErrItemNotFound:              "0011",
	ErrValidationFailed:          "0012",
	ErrDuplicateIntake:           "0013",
	ErrInvalidDonationStatus:     "0014",
	ErrInvalidIntakeStatus:       "0015",
	ErrInvalidPackageStatus:      "0016",
	ErrInvalidRequestStatus:      "0017",
	ErrLockTimeout:               "0018",
	ErrBatchExists:               "0019",
	ErrWarehouseHasReservedStock: "0020",
	ErrDispatch:                  "0021",
	ErrForbidden:                 "0022",
}
