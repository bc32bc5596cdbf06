package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/ozanc/mentorhub/internal/app/models"
	appRepos "github.com/ozanc/mentorhub/internal/app/repositories"
	"github.com/ozanc/mentorhub/internal/config"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
// Without at least one admin the system cannot be bootstrapped: only
// admins can register students and mentors.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	_, err := adminRepo.GetByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &appModels.Admin{
		Username: cfg.Admin.Username,
		Password: hash,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
