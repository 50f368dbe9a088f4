package deduction

import "errors"

var (
	ErrDeductionNotFound = errors.New("deduction not found")
	ErrInvalidType       = errors.New("deduction type must be advance, fine or other")
	ErrInvalidStatus     = errors.New("deduction status must be pending, approved, rejected or completed")
)
