package repos

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrDuplicateEmail = errors.New("customer email already exists")
	ErrNotFound       = errors.New("not found")
)

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// primary result code only, when extended codes are off
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}
