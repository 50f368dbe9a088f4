package attendance

import (
	"time"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

// RawRecord is one attendance row as upstream feeds deliver it. Field names
// vary between feeds, so site can arrive as site_name, site or department.
type RawRecord struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	SiteName   string `json:"site_name"`
	Site       string `json:"site"`
	Department string `json:"department"`
}

// Normalize maps a raw upstream row onto the canonical entity. The site
// fallback order is site_name, then site, then department; an empty
// department falls back to "General" at reporting time, not here.
func (r RawRecord) Normalize() (Attendance, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return Attendance{}, errs
	}

	site := r.SiteName
	if site == "" {
		site = r.Site
	}
	if site == "" {
		site = r.Department
	}

	return Attendance{
		EmployeeID: r.EmployeeID,
		Date:       date,
		Status:     ParseStatus(r.Status),
		SiteName:   site,
		Department: r.Department,
	}, nil
}

type IngestRequest struct {
	Records []RawRecord `json:"records"`
}

func (r *IngestRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "at least one record is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IngestResult reports how a bulk ingest went. Malformed rows are skipped,
// not fatal.
type IngestResult struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *string
	SiteName   *string
	Department *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	SiteName     string  `json:"site_name"`
	Department   string  `json:"department"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		SiteName:     a.SiteName,
		Department:   a.Department,
	}
}

type ListResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type AggregateResponse struct {
	EmployeeID       string `json:"employee_id"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	HalfDays         int    `json:"half_days"`
	LeaveDays        int    `json:"leave_days"`
	TotalWorkingDays int    `json:"total_working_days"`
}
