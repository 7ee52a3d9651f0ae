package mariadb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/go-sql-driver/mysql"
)

const (
	errDuplicateEntry  = 1062
	errMissingParentFK = 1452
)

// mapSQLErr translates driver errors into use case error kinds.
func mapSQLErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s does not exist", usecase.ErrNotFound, resource)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDuplicateEntry:
			return fmt.Errorf("%w: %s already exists", usecase.ErrConflict, resource)
		case errMissingParentFK:
			return fmt.Errorf("%w: %s refers to a record that does not exist", usecase.ErrNotFound, resource)
		}
	}
	return fmt.Errorf("%w: %s: %w", usecase.ErrUpstream, resource, err)
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}

// affectedOrNotFound turns a write that matched no row into ErrNotFound.
func affectedOrNotFound(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapSQLErr(err, resource)
	}
	if n == 0 {
		return mapSQLErr(sql.ErrNoRows, resource)
	}
	return nil
}

// storedRow settles a toggle that lost an insert race, given the result of reading back the
// winning row. A row already gone again means the pair ends up absent.
func storedRow(scanErr error, resource string) (bool, error) {
	if errors.Is(scanErr, sql.ErrNoRows) {
		return false, nil
	}
	if scanErr != nil {
		return false, mapSQLErr(scanErr, resource)
	}
	return true, nil
}
