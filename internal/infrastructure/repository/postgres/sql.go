package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	pqCodeLockNotAvailable = "55P03"
	pqCodeUniqueViolation  = "23505"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isLockTimeout reports whether err is Postgres failing to grab a row lock
// within lock_timeout, i.e. another transaction holds the row.
func isLockTimeout(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqCodeLockNotAvailable
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqCodeUniqueViolation
	}
	return false
}
