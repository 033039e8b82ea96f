package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/model"
	"gorm.io/gorm"
)

type fakeGetter struct {
	certificates map[string]model.Certificate
	err          error
}

func (f *fakeGetter) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Certificate, error) {
	if f.err != nil {
		return nil, f.err
	}

	cert, ok := f.certificates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cert, nil
}

func TestVerify(t *testing.T) {
	store := &fakeGetter{
		certificates: map[string]model.Certificate{
			"CERT-001": {
				ID:     "CERT-001",
				Name:   "Ada",
				Course: "Systems",
				Date:   "2024-01-01",
				Status: constant.CertificateStatusVerified,
			},
			"CERT-002": {
				ID:     "CERT-002",
				Name:   "Grace",
				Course: "Compilers",
				Date:   "2024-02-02",
				Status: constant.CertificateStatusRevoked,
			},
		},
	}
	service := NewService(store, nil)

	tests := []struct {
		name      string
		id        string
		wantState constant.VerificationState
		wantCert  bool
	}{
		{"Verified certificate", "CERT-001", constant.VerificationStateValid, true},
		{"Revoked certificate", "CERT-002", constant.VerificationStateRevoked, true},
		{"Unknown id", "CERT-999", constant.VerificationStateNotFound, false},
		{"Empty id looked up verbatim", "", constant.VerificationStateNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Verify(context.Background(), tt.id)
			if got.State != tt.wantState {
				t.Errorf("Verify(%q) state = %v, want %v", tt.id, got.State, tt.wantState)
			}
			if tt.wantCert && got.Certificate == nil {
				t.Fatalf("Verify(%q) expected a certificate", tt.id)
			}
			if !tt.wantCert && got.Certificate != nil {
				t.Errorf("Verify(%q) expected no certificate, got %+v", tt.id, got.Certificate)
			}
		})
	}
}

// Rendered fields must exactly equal the stored values.
func TestVerifyFieldsMatchStore(t *testing.T) {
	stored := model.Certificate{
		ID:     "CERT-001",
		Name:   "Ada",
		Course: "Systems",
		Date:   "2024-01-01",
		Status: constant.CertificateStatusVerified,
	}
	service := NewService(&fakeGetter{certificates: map[string]model.Certificate{stored.ID: stored}}, nil)

	got := service.Verify(context.Background(), "CERT-001")
	cert := got.Certificate
	if cert == nil {
		t.Fatal("Expected a certificate")
	}
	if cert.Name != stored.Name || cert.Course != stored.Course || cert.Date != stored.Date || cert.Status != stored.Status {
		t.Errorf("Certificate fields differ from store: got %+v, want %+v", *cert, stored)
	}
}

// A transport failure on the lookup degrades to not_found, indistinguishable
// from a truly absent certificate.
func TestVerifyLookupFailureDegradesToNotFound(t *testing.T) {
	service := NewService(&fakeGetter{err: errors.New("connection refused")}, nil)

	got := service.Verify(context.Background(), "CERT-001")
	if got.State != constant.VerificationStateNotFound {
		t.Errorf("Verify state on lookup failure = %v, want %v", got.State, constant.VerificationStateNotFound)
	}
	if got.Certificate != nil {
		t.Errorf("Expected no certificate on lookup failure, got %+v", got.Certificate)
	}
}
