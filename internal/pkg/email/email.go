package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/stafflane/backoffice-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends outbound mail. Implementations must treat a missing
// SMTP configuration as a no-op rather than an error so that development
// environments work without a mail server.
type EmailService interface {
	SendSalarySlip(to, employeeName, month, slipNumber, netSalary string, attachment []byte) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type salarySlipEmailData struct {
	EmployeeName string
	Month        string
	SlipNumber   string
	NetSalary    string
}

// SendSalarySlip emails the slip summary with the PDF attached.
func (s *emailServiceImpl) SendSalarySlip(to, employeeName, month, slipNumber, netSalary string, attachment []byte) error {
	data := salarySlipEmailData{
		EmployeeName: employeeName,
		Month:        month,
		SlipNumber:   slipNumber,
		NetSalary:    netSalary,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "salary_slip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Salary Slip %s - %s", month, slipNumber)
	filename := fmt.Sprintf("%s.pdf", slipNumber)
	return s.sendHTML(to, subject, body.String(), filename, attachment)
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From
	boundary := "stafflane-mime-boundary"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")

	if len(attachment) > 0 {
		fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)
		fmt.Fprintf(&msg, "--%s\r\n", boundary)
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(htmlBody)
		fmt.Fprintf(&msg, "\r\n--%s\r\n", boundary)
		msg.WriteString("Content-Type: application/pdf\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=%q\r\n\r\n", attachmentName)
		msg.WriteString(encodeBase64Wrapped(attachment))
		fmt.Fprintf(&msg, "\r\n--%s--\r\n", boundary)
	} else {
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(htmlBody)
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, msg.Bytes())
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
