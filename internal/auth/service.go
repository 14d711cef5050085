package auth

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/crustcraft/crustcraft-backend/pkg/auth"
	"github.com/crustcraft/crustcraft-backend/pkg/config"
	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
	"github.com/crustcraft/crustcraft-backend/pkg/security"
)

// ServiceParams groups dependencies for the admin auth service.
type ServiceParams struct {
	Repo     Repository
	Logger   *logger.Logger
	JWT      config.JWTConfig
	Password config.PasswordConfig
}

// Service authenticates admin users and mints access tokens.
type Service struct {
	repo     Repository
	logg     *logger.Logger
	jwt      config.JWTConfig
	password config.PasswordConfig
	now      func() time.Time
}

// NewService builds an admin auth service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	if params.Logger == nil {
		return nil, goerrors.New("logger is required")
	}
	if params.JWT.Secret == "" {
		return nil, goerrors.New("jwt secret is required")
	}
	return &Service{
		repo:     params.Repo,
		logg:     params.Logger,
		jwt:      params.JWT,
		password: params.Password,
		now:      time.Now,
	}, nil
}

// LoginResult carries the signed token and its expiry for the admin UI.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	AdminID     uuid.UUID `json:"admin_id"`
	Email       string    `json:"email"`
}

// Login verifies credentials and returns a signed access token. The same
// unauthorized error covers unknown emails and wrong passwords.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New(errors.CodeValidation, "email and password are required")
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	issuedAt := s.now()
	token, err := pkgauth.MintAccessToken(s.jwt, issuedAt, pkgauth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "minting access token")
	}

	s.logg.Info(s.logg.WithAdminID(ctx, admin.ID.String()), "admin logged in")
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   issuedAt.Add(time.Duration(s.jwt.ExpirationMinutes) * time.Minute),
		AdminID:     admin.ID,
		Email:       admin.Email,
	}, nil
}

// CreateAdmin provisions an admin account, hashing the supplied password.
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New(errors.CodeValidation, "valid email is required")
	}
	if len(password) < 8 {
		return nil, errors.New(errors.CodeValidation, "password must be at least 8 characters")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(errors.CodeConflict, "admin email already exists")
	}

	hash, err := security.HashPassword(password, s.password)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "hashing password")
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ChangePassword rotates an admin's password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, adminID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return errors.New(errors.CodeValidation, "password must be at least 8 characters")
	}

	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return errors.New(errors.CodeNotFound, "admin not found")
	}

	ok, err := security.VerifyPassword(current, admin.PasswordHash)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return errors.New(errors.CodeUnauthorized, "current password is incorrect")
	}

	hash, err := security.HashPassword(next, s.password)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "hashing password")
	}
	admin.PasswordHash = hash
	return s.repo.Update(ctx, admin)
}
