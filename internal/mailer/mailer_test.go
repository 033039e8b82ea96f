package mailer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nis6tech/certify/internal/config"
)

// The final error after exhausting retries must carry the transport cause,
// not a nil. Points the client at a dead server so every attempt fails.
func TestSendMailRetriesReportCause(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff sleeps, skipping in short mode")
	}

	srv := httptest.NewServer(nil)
	srv.Close()

	mail := NewSendgrid("test-key", "noreply@certify.local", false, nil)
	mail.client.Request.BaseURL = srv.URL

	_, err := mail.Send(CERTIFICATE_ISSUED_TEMPLATE, "Ada", "ada@certify.local", struct {
		Name            string
		Course          string
		Date            string
		CertificateId   string
		VerificationURL string
		AppName         string
	}{Name: "Ada"})

	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if strings.Contains(err.Error(), "<nil>") {
		t.Errorf("Retry error lost its cause: %v", err)
	}
}

// Exercises the real sendgrid API in sandbox mode, which validates the
// request without delivering mail. Needs credentials from .env.
func TestSendMail(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Skip("no .env with sendgrid credentials, skipping")
	}

	cfg := config.GetConfig()
	if cfg.Mail.SEND_GRID.API_KEY == "" {
		t.Skip("MAIL_SEND_GRID_API_KEY not set, skipping")
	}

	// isProduction = false to ensure that the send mail test always run in
	// sandbox mode which won't send actual email to the user
	mail := NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, false, nil)

	vars := struct {
		Name            string
		Course          string
		Date            string
		CertificateId   string
		VerificationURL string
		AppName         string
	}{
		Name:            "Ada",
		Course:          "Systems",
		Date:            "2024-01-01",
		CertificateId:   "CERT-001",
		VerificationURL: "http://localhost:3000/verify.html?id=CERT-001",
		AppName:         "Certify",
	}

	status, err := mail.Send(CERTIFICATE_ISSUED_TEMPLATE, vars.Name, os.Getenv("MAIL_FROM_MAIL"), vars)

	switch status {
	case http.StatusUnauthorized:
		t.Errorf("Unauthorized to send mail, check mail api_key and from_email")
	case http.StatusForbidden:
		t.Errorf("Forbidden to send mail, check mail from_email is it the correct email authorized in send grid?")
	}

	// If status == 202, it mean successful
	if status != http.StatusAccepted && status != http.StatusOK {
		t.Errorf("We got status %d, error: %v", status, err)
	}
}
