package site

import "time"

// DefaultSiteName and DefaultDepartment are the reporting fallbacks when a
// record carries no site metadata.
const (
	DefaultSiteName   = "Not assigned"
	DefaultDepartment = "General"
)

// Site is a reference-list entry used by reporting rollups.
type Site struct {
	ID         string
	Name       string
	Department string
	Location   *string
	IsActive   bool
	CreatedAt  time.Time
}
