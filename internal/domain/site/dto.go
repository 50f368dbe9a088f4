package site

import "github.com/stafflane/backoffice-backend-go/internal/pkg/validator"

type CreateSiteRequest struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Location   *string `json:"location,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Location   *string `json:"location,omitempty"`
	IsActive   bool    `json:"is_active"`
}

func ToResponse(s Site) SiteResponse {
	department := s.Department
	if department == "" {
		department = DefaultDepartment
	}

	return SiteResponse{
		ID:         s.ID,
		Name:       s.Name,
		Department: department,
		Location:   s.Location,
		IsActive:   s.IsActive,
	}
}
