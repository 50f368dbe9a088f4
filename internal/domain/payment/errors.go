package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidPeriod   = errors.New("period must be daily, weekly, monthly or yearly")
)
