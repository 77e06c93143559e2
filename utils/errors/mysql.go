package errors

import (
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/drims/constant"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
)

func mysqlNumber(err error) uint16 {
	var me *mysql.MySQLError
	if stderrors.As(err, &me) {
		return me.Number
	}
	return 0
}

func IsDuplicateEntry(err error) bool { return mysqlNumber(err) == mysqlDuplicateEntry }

func IsLockWaitTimeout(err error) bool { return mysqlNumber(err) == mysqlLockWaitTimeout }

func IsDeadlock(err error) bool { return mysqlNumber(err) == mysqlDeadlock }

// Classify maps a failure raised inside a unit of work to the error the caller sees.
// Typed errors pass through unchanged, lock contention gets its own type, anything else is internal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var t Typed
	if stderrors.As(err, &t) {
		return err
	}
	switch {
	case IsLockWaitTimeout(err):
		return SetCustomError(constant.ErrLockTimeout)
	case IsDeadlock(err):
		return SetCustomErrorMessage(constant.ErrStaleVersion, "concurrent update detected, please reload and try again")
	}
	return SetCustomError(constant.ErrInternal)
}
