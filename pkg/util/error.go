package util

import (
	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/errno"
)

type unretryableErr interface {
	marker()
}

type unretryableWrapper struct {
	error
}

func (unretryableWrapper) marker() {}

// WrapUnretryableError wraps an error to make it unretryable.
func WrapUnretryableError(err error) error {
	return unretryableWrapper{err}
}

// IsUnretryableError checks if an error is wrapped by WrapUnretryableError. It
// supports pingcap/errors package.
func IsUnretryableError(err error) bool {
	for err != nil {
		if _, ok := err.(unretryableErr); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// CheckSQLErrorUnretryable checks the MySQL error returned by the maze store
// to determine if it is unretryable. Errors we don't have confidence about are
// treated as retryable.
func CheckSQLErrorUnretryable(err *mysql.MySQLError) bool {
	if err == nil {
		return false
	}
	switch err.Number {
	case errno.ErrParse, errno.ErrNoSuchTable, errno.ErrBadDB,
		errno.ErrAccessDenied, errno.ErrDBaccessDenied, errno.ErrTableaccessDenied:
		return true
	}
	return false
}

// ClassifySQLError wraps err as unretryable if it's a MySQL error that
// CheckSQLErrorUnretryable rejects. Other errors are returned as is.
func ClassifySQLError(err error) error {
	if merr, ok := errors.Cause(err).(*mysql.MySQLError); ok && CheckSQLErrorUnretryable(merr) {
		return WrapUnretryableError(err)
	}
	return err
}
