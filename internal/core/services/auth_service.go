package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripweave/tripsplit/internal/apperrors"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
	"github.com/tripweave/tripsplit/internal/platform/config"
	"github.com/tripweave/tripsplit/internal/utils"
)

// authService implements the AuthSvcFacade interface against the single
// operator account from configuration. There is no user table; the bearer
// token gates all mutating routes.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service with the provided configuration
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed token response.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" || req.Username != s.cfg.AdminUsername ||
		!utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("username", req.Username))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
	}, nil
}
