package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/nis6tech/certify/internal/app_context"
	"github.com/nis6tech/certify/internal/config"
	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/repository"
	"github.com/nis6tech/certify/internal/verification"
	"gorm.io/gorm"
)

type stubCertificates struct {
	certs map[string]*model.Certificate
}

func (s stubCertificates) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Certificate, error) {
	if cert, ok := s.certs[id]; ok {
		return cert, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newVerifyTestRouter(t *testing.T, certs map[string]*model.Certificate) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := appcontext.Application{
		Config:     &config.Config{},
		Repository: &repository.Repository{},
		Verifier:   verification.NewService(stubCertificates{certs: certs}, nil),
	}

	c := NewController(&app)

	r := gin.New()
	r.GET("/api/v1/verify/:certificateId", c.Verify.Verify)
	return r
}

func TestVerifyEndpoint(t *testing.T) {
	router := newVerifyTestRouter(t, map[string]*model.Certificate{
		"CERT-001": {ID: "CERT-001", Name: "Sok Dara", Course: "Go Basics", Date: "2024-05-01", Status: constant.CertificateStatusVerified},
		"CERT-002": {ID: "CERT-002", Name: "Chan Thida", Course: "Go Basics", Date: "2024-05-01", Status: constant.CertificateStatusRevoked},
	})

	tests := []struct {
		name          string
		certificateId string
		wantState     constant.VerificationState
	}{
		{"Verified certificate", "CERT-001", constant.VerificationStateValid},
		{"Revoked certificate", "CERT-002", constant.VerificationStateRevoked},
		{"Unknown certificate", "CERT-404", constant.VerificationStateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/verify/"+tt.certificateId, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			var resp struct {
				Success bool `json:"success"`
				Data    struct {
					State       constant.VerificationState `json:"state"`
					Certificate *model.Certificate         `json:"certificate"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if !resp.Success {
				t.Error("Expected success response")
			}
			if resp.Data.State != tt.wantState {
				t.Errorf("Expected state %s, got %s", tt.wantState, resp.Data.State)
			}
			if tt.wantState == constant.VerificationStateNotFound && resp.Data.Certificate != nil {
				t.Error("Expected no certificate payload for unknown id")
			}
			if tt.wantState != constant.VerificationStateNotFound && resp.Data.Certificate == nil {
				t.Error("Expected certificate payload")
			}
		})
	}
}
