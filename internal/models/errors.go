package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrLedgerUnavailable is returned when income records cannot be
	// read. This is not the caller's fault, the request can be retried.
	ErrLedgerUnavailable = errors.New("the income ledger is currently unavailable, please try again later")
)
