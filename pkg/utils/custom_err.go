package utils

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrTheaterNotFound    = errors.New("theater not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidManager     = errors.New("manager must be an existing staff account")
	ErrInvalidStatus      = errors.New("invalid booking or payment status")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)

// DatabaseError tags a storage failure so HandleServiceError maps it to 500
// while keeping the driver error in the chain for logging.
func DatabaseError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDatabaseError, err)
}
