package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/dto"
)

// AuthSvcFacade issues API tokens for the login handler.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed token response.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
