package slip

import "errors"

var (
	ErrSlipNotFound     = errors.New("salary slip not found")
	ErrNoRecipientEmail = errors.New("no recipient email address for this employee")
)
