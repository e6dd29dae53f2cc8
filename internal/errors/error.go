package errors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrValidation         = errors.New("invalid input data")
	ErrStorageUnavailable = errors.New("database connection failed")
	ErrWriteFailed        = errors.New("statement did not succeed")
	ErrMethodNotAllowed   = errors.New("method not allowed")

	ErrEmptyAuth        = errors.New("missing authorization")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrPasswordMismatch = errors.New("password mismatch")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ClassifyStoreError folds a store error into the error taxonomy: a
// connection that could not be established (or a call that ran out its
// deadline) is StorageUnavailable, anything else that reached the store is
// WriteFailed.
func ClassifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(err, ErrStorageUnavailable)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return errors.Join(err, ErrStorageUnavailable)
	}
	return errors.Join(err, ErrWriteFailed)
}
