package repository

import "errors"

var (
	// ErrNotFound covers both a missing row and an ownership mismatch; the
	// two cases are deliberately indistinguishable so non-owners cannot
	// probe for resource existence.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken signals a unique-email violation on user creation.
	ErrEmailTaken = errors.New("email already registered")
)
