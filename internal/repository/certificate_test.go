package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nis6tech/certify/internal/auth"
	"github.com/nis6tech/certify/internal/config"
	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/util"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	// A named shared-cache database keeps the schema visible across the
	// pooled connections for the lifetime of the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// AutoMigrate would copy the model's Postgres `timestamptz` column type
	// verbatim, which the sqlite driver scans back as a string. Create the
	// schema explicitly with `datetime` columns so time values round-trip.
	for _, stmt := range []string{
		`CREATE TABLE files (
			id text PRIMARY KEY,
			created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
			file_name text NOT NULL,
			unique_file_name text NOT NULL UNIQUE,
			bucket_name text NOT NULL,
			size bigint NOT NULL
		)`,
		`CREATE TABLE certificates (
			id text PRIMARY KEY,
			name text NOT NULL,
			course text NOT NULL,
			date text NOT NULL,
			status text NOT NULL DEFAULT 'Verified',
			email text DEFAULT NULL,
			badge_file_id text DEFAULT NULL REFERENCES files(id) ON UPDATE CASCADE ON DELETE SET NULL,
			created_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at datetime NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("Failed to migrate test database: %v", err)
		}
	}

	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
	return NewRepository(db, util.NewLogger("development"), jwtService, nil)
}

func TestCertificateCreateAndRead(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cert := &model.Certificate{ID: "CERT-001", Name: "Ada", Course: "Systems", Date: "2024-01-01"}
	if err := repo.Certificate.Create(ctx, nil, cert); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := repo.Certificate.GetById(ctx, nil, "CERT-001")
	if err != nil {
		t.Fatalf("GetById() after Create() error: %v", err)
	}

	if got.Name != "Ada" || got.Course != "Systems" || got.Date != "2024-01-01" {
		t.Errorf("Read-after-write mismatch: %+v", got)
	}
	if got.Status != constant.CertificateStatusVerified {
		t.Errorf("Expected status to default to Verified, got %s", got.Status)
	}
}

func TestCertificateCreateDuplicateId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &model.Certificate{ID: "CERT-001", Name: "Ada", Course: "Systems", Date: "2024-01-01"}
	if err := repo.Certificate.Create(ctx, nil, first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	second := &model.Certificate{ID: "CERT-001", Name: "Grace", Course: "Compilers", Date: "2024-02-02"}
	if err := repo.Certificate.Create(ctx, nil, second); !errors.Is(err, ErrDuplicateCertificateId) {
		t.Fatalf("Expected ErrDuplicateCertificateId, got %v", err)
	}

	// The existing record must be untouched by the failed create
	got, err := repo.Certificate.GetById(ctx, nil, "CERT-001")
	if err != nil {
		t.Fatalf("GetById() error: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("Existing record was modified by a duplicate create: %+v", got)
	}
}

func TestCertificateUpdateCannotMoveId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cert := &model.Certificate{ID: "CERT-001", Name: "Ada", Course: "Systems", Date: "2024-01-01"}
	if err := repo.Certificate.Create(ctx, nil, cert); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	err := repo.Certificate.Update(ctx, nil, "CERT-001", map[string]any{
		"id":   "CERT-999",
		"name": "Grace",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, err := repo.Certificate.GetById(ctx, nil, "CERT-001")
	if err != nil {
		t.Fatalf("Record no longer addressable at its original id: %v", err)
	}
	if got.Name != "Grace" {
		t.Errorf("Expected name to change to Grace, got %s", got.Name)
	}

	if _, err := repo.Certificate.GetById(ctx, nil, "CERT-999"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected no record under the smuggled id, got %v", err)
	}
}

func TestCertificateUpdateUnknownId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Certificate.Update(ctx, nil, "CERT-404", map[string]any{"name": "X"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound for unknown id, got %v", err)
	}

	// An empty payload (or one that only carries the stripped id) must still
	// signal not-found instead of a silent success
	err = repo.Certificate.Update(ctx, nil, "CERT-404", map[string]any{"id": "CERT-404"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound for empty update on unknown id, got %v", err)
	}
}

func TestCertificateUpdateEmptyPayloadExistingId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cert := &model.Certificate{ID: "CERT-001", Name: "Ada", Course: "Systems", Date: "2024-01-01"}
	if err := repo.Certificate.Create(ctx, nil, cert); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := repo.Certificate.Update(ctx, nil, "CERT-001", map[string]any{}); err != nil {
		t.Errorf("Empty update on existing id should succeed, got %v", err)
	}
}

func TestCertificateRevokeKeepsRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cert := &model.Certificate{ID: "CERT-001", Name: "Ada", Course: "Systems", Date: "2024-01-01"}
	if err := repo.Certificate.Create(ctx, nil, cert); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := repo.Certificate.Revoke(ctx, nil, "CERT-001"); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}

	got, err := repo.Certificate.GetById(ctx, nil, "CERT-001")
	if err != nil {
		t.Fatalf("Revoked certificate must remain readable, got %v", err)
	}
	if got.Status != constant.CertificateStatusRevoked {
		t.Errorf("Expected status Revoked, got %s", got.Status)
	}
	if got.Name != "Ada" || got.Course != "Systems" || got.Date != "2024-01-01" {
		t.Errorf("Revoke must not touch other fields: %+v", got)
	}

	// Revoking twice is harmless
	if err := repo.Certificate.Revoke(ctx, nil, "CERT-001"); err != nil {
		t.Errorf("Second Revoke() should succeed, got %v", err)
	}
}
