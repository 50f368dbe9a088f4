package structure

import "errors"

var (
	ErrStructureNotFound      = errors.New("salary structure not found")
	ErrStructureAlreadyExists = errors.New("an active salary structure already exists for this employee")
	ErrBasicSalaryRequired    = errors.New("basic salary must be greater than zero")
)
