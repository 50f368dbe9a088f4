package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this month")
	ErrNoSalaryStructure          = errors.New("no active salary structure for this employee")
	ErrInvalidPaymentStatus       = errors.New("invalid payment status")
	ErrPaidAmountOutOfRange       = errors.New("paid amount must be greater than zero and not exceed net salary")
	ErrPaymentDateRequired        = errors.New("payment date is required for this status")
	ErrInvalidMonth               = errors.New("month must be in YYYY-MM format")
)
