package repository

import (
	"context"
	"errors"

	constant "github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateCertificateId is returned by Create when the issuer-assigned id
// is already taken. The existing record is left untouched.
var ErrDuplicateCertificateId = errors.New("certificate id already exists")

type CertificateRepository struct {
	*baseRepository
}

// GetAll returns every certificate in provider order. No pagination, the
// admin table is a full-replace render.
func (cr CertificateRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Certificate, error) {
	cr.logger.Debug("Get all certificates")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificates []model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Preload("BadgeFile").Find(&certificates).Error; err != nil {
		return nil, err
	}

	return certificates, nil
}

// GetById returns gorm.ErrRecordNotFound when no certificate exists under the
// id. Callers on the public path conflate that with transport failures, see
// the verification package.
func (cr CertificateRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by id: %s", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
		ID: id,
	}).Preload("BadgeFile").First(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

// Create persists a new certificate under its issuer-assigned id. The
// existence check and the insert share a transaction, and the primary key
// constraint backstops concurrent creates racing on the same id.
func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) error {
	cr.logger.Debugf("Create certificate: %s", cert.ID)

	if cert.Status == "" {
		cert.Status = constant.CertificateStatusVerified
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		if _, err := cr.GetById(ctx, tx2, cert.ID); err == nil {
			return ErrDuplicateCertificateId
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx2.WithContext(ctx).Model(&model.Certificate{}).Create(cert).Error
	})

	if errors.Is(txErr, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCertificateId
	}

	return txErr
}

// Update applies a partial merge: only the supplied columns change. Any "id"
// key in the payload is stripped so the document key cannot drift through the
// generic update path.
func (cr CertificateRepository) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	cr.logger.Debugf("Update certificate %s with fields: %v", id, fields)

	delete(fields, "id")
	if len(fields) == 0 {
		// Nothing to change, but the caller still expects a not-found signal
		// for an unknown id.
		_, err := cr.GetById(ctx, tx, id)
		return err
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
		ID: id,
	}).Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Revoke is the delete operation: a soft status transition, never a row
// delete. Revoking an already revoked certificate is harmless.
func (cr CertificateRepository) Revoke(ctx context.Context, tx *gorm.DB, id string) error {
	cr.logger.Debugf("Revoke certificate: %s", id)

	return cr.Update(ctx, tx, id, map[string]any{
		"status": constant.CertificateStatusRevoked,
	})
}
