package main

import (
	"context"
	"errors"

	"github.com/nis6tech/certify/internal/auth"
	"github.com/nis6tech/certify/internal/config"
	"github.com/nis6tech/certify/internal/database"
	"github.com/nis6tech/certify/internal/env"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/repository"
	"github.com/nis6tech/certify/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(&model.User{}, &model.Token{}, &model.File{}, &model.Certificate{})
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	repo := repository.NewRepository(db, logger, auth.NewJwt(cfg.Auth, logger), nil)
	if err := seedAdmin(repo); err != nil {
		logger.Panic(err)
	}
}

// seedAdmin creates the admin account from ADMIN_EMAIL and ADMIN_PASSWORD if
// it does not exist yet. Skipped when the variables are not set. This is the
// only path that provisions accounts, the OAuth callback will not.
func seedAdmin(repo *repository.Repository) error {
	adminEmail := env.GetString("ADMIN_EMAIL", "")
	adminPassword := env.GetString("ADMIN_PASSWORD", "")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	ctx := context.Background()
	_, err := repo.User.GetByEmail(ctx, nil, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	return repo.User.Create(ctx, nil, model.User{
		Email:        adminEmail,
		FirstName:    "Admin",
		PasswordHash: hash,
	})
}
