package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/service/payroll"
)

// PayrollJobs holds the scheduled payroll work.
type PayrollJobs struct {
	payrollService payroll.PayrollService
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollService: payrollService}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_process_payroll", 1*time.Hour, j.AutoProcessPreviousMonth)
}

// AutoProcessPreviousMonth bulk-processes the previous month's payroll on
// the 1st of each month. Employees already processed are skipped, so the
// hourly trigger window cannot double-process anyone.
func (j *PayrollJobs) AutoProcessPreviousMonth(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 {
		return nil
	}

	month := now.AddDate(0, -1, 0).Format("2006-01")
	slog.Info("Cron: Starting payroll auto-process job", "month", month)

	result, err := j.payrollService.ProcessAll(ctx, domain.ProcessAllRequest{Month: month})
	if err != nil {
		return fmt.Errorf("auto-process payroll for %s: %w", month, err)
	}

	slog.Info("Cron: Payroll auto-process finished",
		"month", month,
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return nil
}
