package engine

import (
	"errors"
)

var (
	// ErrAmountNotPositive rejects allocation amounts of zero or less
	// before any state is read.
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")

	// ErrInsufficientUnallocated is returned when an allocation asks
	// for more than the owner's unallocated pool holds at commit time.
	ErrInsufficientUnallocated = errors.New("the amount exceeds the unallocated income")

	// ErrInsufficientBalance is returned when a deallocation asks for
	// more than the bucket itself holds.
	ErrInsufficientBalance = errors.New("the amount exceeds the bucket balance")

	// ErrConflict is returned when an operation still fails after the
	// bounded number of retries. The caller can retry the whole
	// request.
	ErrConflict = errors.New("the operation conflicted with concurrent changes, please retry")
)
