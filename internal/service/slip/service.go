package slip

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/slip"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/email"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/storage"
)

type SlipService interface {
	// Generate snapshots a payroll record into a new slip. Generating twice
	// for the same record produces two slips with distinct slip numbers.
	Generate(ctx context.Context, req slip.GenerateSlipRequest) (slip.SlipResponse, error)
	GetByID(ctx context.Context, id string) (slip.SlipResponse, error)
	List(ctx context.Context, month *string, employeeID *string) ([]slip.SlipResponse, error)
	// DownloadPDF streams the rendered slip document.
	DownloadPDF(ctx context.Context, id string) (io.ReadCloser, string, error)
	// SendEmail mails the slip to the employee and marks it as sent. A slip
	// may be re-sent; the email_sent flag never goes back to false.
	SendEmail(ctx context.Context, id string) (slip.SlipResponse, error)
}

type slipServiceImpl struct {
	slipRepo     slip.SlipRepository
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	fileStorage  storage.FileStorage
	emailService email.EmailService
	logger       *slog.Logger
}

func NewSlipService(
	slipRepo slip.SlipRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	emailService email.EmailService,
	logger *slog.Logger,
) SlipService {
	return &slipServiceImpl{
		slipRepo:     slipRepo,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		fileStorage:  fileStorage,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *slipServiceImpl) Generate(ctx context.Context, req slip.GenerateSlipRequest) (slip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return slip.SlipResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.PayrollID)
	if err != nil {
		return slip.SlipResponse{}, err
	}

	snapshot := slip.SalarySlip{
		PayrollID:       record.ID,
		SlipNumber:      newSlipNumber(record.Month),
		EmployeeID:      record.EmployeeID,
		Month:           record.Month,
		BasicSalary:     record.BasicSalary,
		TotalAllowances: record.TotalAllowances,
		TotalDeductions: record.TotalDeductions,
		NetSalary:       record.NetSalary,
		PresentDays:     record.PresentDays,
		AbsentDays:      record.AbsentDays,
		HalfDays:        record.HalfDays,
		LeaveDays:       record.LeaveDays,
		GeneratedDate:   time.Now(),
		EmployeeName:    record.EmployeeName,
	}

	created, err := s.slipRepo.Create(ctx, snapshot)
	if err != nil {
		return slip.SlipResponse{}, err
	}

	pdfBytes, err := renderPDF(created)
	if err != nil {
		return slip.SlipResponse{}, err
	}
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(pdfBytes), pdfPath(created.SlipNumber), "application/pdf"); err != nil {
		return slip.SlipResponse{}, fmt.Errorf("store slip pdf: %w", err)
	}

	s.logger.Info("salary slip generated",
		slog.String("slip_id", created.ID),
		slog.String("slip_number", created.SlipNumber),
		slog.String("payroll_id", created.PayrollID))
	return slip.ToResponse(created), nil
}

func (s *slipServiceImpl) GetByID(ctx context.Context, id string) (slip.SlipResponse, error) {
	sl, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return slip.SlipResponse{}, err
	}
	return slip.ToResponse(sl), nil
}

func (s *slipServiceImpl) List(ctx context.Context, month *string, employeeID *string) ([]slip.SlipResponse, error) {
	slips, err := s.slipRepo.List(ctx, month, employeeID)
	if err != nil {
		return nil, err
	}
	return slip.ToResponses(slips), nil
}

func (s *slipServiceImpl) DownloadPDF(ctx context.Context, id string) (io.ReadCloser, string, error) {
	sl, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	reader, err := s.fileStorage.Download(ctx, pdfPath(sl.SlipNumber))
	if err != nil {
		return nil, "", fmt.Errorf("download slip pdf: %w", err)
	}
	return reader, fmt.Sprintf("%s.pdf", sl.SlipNumber), nil
}

func (s *slipServiceImpl) SendEmail(ctx context.Context, id string) (slip.SlipResponse, error) {
	sl, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return slip.SlipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, sl.EmployeeID)
	if err != nil {
		return slip.SlipResponse{}, err
	}
	if emp.Email == nil || *emp.Email == "" {
		return slip.SlipResponse{}, slip.ErrNoRecipientEmail
	}

	pdfBytes, err := renderPDF(sl)
	if err != nil {
		return slip.SlipResponse{}, err
	}

	if err := s.emailService.SendSalarySlip(*emp.Email, emp.FullName, sl.Month, sl.SlipNumber, sl.NetSalary.StringFixed(2), pdfBytes); err != nil {
		return slip.SlipResponse{}, err
	}

	marked, err := s.slipRepo.MarkEmailed(ctx, sl.ID)
	if err != nil {
		return slip.SlipResponse{}, err
	}

	s.logger.Info("salary slip emailed",
		slog.String("slip_id", marked.ID),
		slog.String("employee_id", marked.EmployeeID))
	return slip.ToResponse(marked), nil
}

func pdfPath(slipNumber string) string {
	return fmt.Sprintf("slips/%s.pdf", slipNumber)
}

// newSlipNumber builds numbers like SLP-202508-1a2b3c4d. The month keeps
// them human-sortable and the uuid fragment keeps regenerated slips apart.
func newSlipNumber(month string) string {
	compact := strings.ReplaceAll(month, "-", "")
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("SLP-%s-%s", compact, short)
}
