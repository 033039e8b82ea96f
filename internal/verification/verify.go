package verification

import (
	"context"
	"errors"

	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CertificateGetter is the one lookup the service needs. Satisfied by
// repository.CertificateRepository; tests substitute an in-memory fake.
type CertificateGetter interface {
	GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Certificate, error)
}

type Result struct {
	State       constant.VerificationState `json:"state"`
	Certificate *model.Certificate         `json:"certificate,omitempty"`
}

type Service struct {
	certificates CertificateGetter
	logger       *zap.SugaredLogger
}

func NewService(certificates CertificateGetter, logger *zap.SugaredLogger) *Service {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &Service{certificates: certificates, logger: logger}
}

// Verify classifies the id into valid, revoked or not_found against the
// current store state. The id is looked up verbatim, no format validation.
//
// A failed lookup degrades to not_found: the public caller cannot tell an
// absent certificate from an unreachable store. The failure is reported to
// the operator log instead.
func (s *Service) Verify(ctx context.Context, id string) Result {
	cert, err := s.certificates.GetById(ctx, nil, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Errorf("Certificate lookup failed for id %q, degrading to not_found: %v", id, err)
		}
		return Result{State: constant.VerificationStateNotFound}
	}

	if cert.Revoked() {
		return Result{State: constant.VerificationStateRevoked, Certificate: cert}
	}

	return Result{State: constant.VerificationStateValid, Certificate: cert}
}
