// Package guard is the only sanctioned write path for rows carrying version_nbr.
//
// Every update names the version the caller loaded. The statement matches on that version and
// bumps it, so a writer holding an older copy of the row matches nothing and gets a
// StaleVersionError instead of silently overwriting the newer data.
//
// Inserts do not go through here: the audit stamper sets version 1 on creation and the row
// has no prior version to check.
package guard

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/errors"
)

// Row locates one versioned record.
type Row struct {
	Table string
	// Key is the human readable primary key used in conflict messages, e.g. "batch_id=12".
	Key   string
	Where string
	Args  []any
}

// Update runs "UPDATE <table> SET <set>, version_nbr = version_nbr + 1 WHERE <where> AND version_nbr = ?"
// with the entity's current in-memory version, and advances that version on success.
func Update(ctx context.Context, ex sqlx.ExecerContext, row Row, entity audit.Versioned, set string, setArgs ...any) error {
	expected := entity.Version()
	q := fmt.Sprintf("UPDATE %s SET %s, version_nbr = version_nbr + 1 WHERE %s AND version_nbr = ?", row.Table, set, row.Where)

	args := make([]any, 0, len(setArgs)+len(row.Args)+1)
	args = append(args, setArgs...)
	args = append(args, row.Args...)
	args = append(args, expected)

	res, err := ex.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	// The version bump always changes the row, so zero affected rows means no match.
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &errors.StaleVersionError{Entity: row.Table, Key: row.Key, ExpectedVersion: expected}
	}
	entity.SetVersion(expected + 1)
	return nil
}

func KeyOf(column string, id uint64) string {
	return fmt.Sprintf("%s=%d", column, id)
}
