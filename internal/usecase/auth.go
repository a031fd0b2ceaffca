package usecase

import (
	"context"
	"errors"

	"store-reservation/internal/domain/user"
	"store-reservation/internal/pkg/jwt"
	"store-reservation/internal/pkg/password"
)

var (
	ErrInvalidCredentials   = errors.New("invalid login id or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

// CredentialStore resolves stored password hashes by login id. Users and
// partners authenticate against separate tables, so the lookup is split
// by role rather than unified.
type CredentialStore interface {
	UserPasswordHash(ctx context.Context, loginID string) (string, error)
	PartnerPasswordHash(ctx context.Context, loginID string) (string, error)
}

type LoginResult struct {
	Token   string
	LoginID string
	Role    user.Role
}

type AuthUseCase interface {
	Login(ctx context.Context, loginID, rawPassword string, role user.Role) (*LoginResult, error)
	ValidateToken(tokenString string) (string, user.Role, error)
}

type authUseCaseImpl struct {
	credentials CredentialStore
	jwtService  *jwt.Service
}

func NewAuthUseCase(credentials CredentialStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, loginID, rawPassword string, role user.Role) (*LoginResult, error) {
	var (
		hash string
		err  error
	)
	switch role {
	case user.RoleUser:
		hash, err = a.credentials.UserPasswordHash(ctx, loginID)
	case user.RolePartner:
		hash, err = a.credentials.PartnerPasswordHash(ctx, loginID)
	default:
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		// Unknown id and wrong password are indistinguishable to the caller.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(loginID, string(role))
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{Token: token, LoginID: loginID, Role: role}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (string, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return "", "", ErrTokenValidation
	}

	return claims.SubjectID, role, nil
}
