package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/nis6tech/certify/internal/auth"
	"github.com/nis6tech/certify/internal/config"
	"github.com/nis6tech/certify/internal/mailer"
	"github.com/nis6tech/certify/internal/repository"
	"github.com/nis6tech/certify/internal/verification"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Verifier classifies public certificate lookups.
	Verifier *verification.Service

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	S3 *minio.Client
}
