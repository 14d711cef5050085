package franchise

import (
	"context"
	goerrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/enums"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

// ServiceParams groups dependencies for the franchise service.
type ServiceParams struct {
	Repo   Repository
	Logger *logger.Logger
}

// Service handles the franchise application queue.
type Service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds a franchise service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	if params.Logger == nil {
		return nil, goerrors.New("logger is required")
	}
	return &Service{repo: params.Repo, logg: params.Logger}, nil
}

// SubmitParams is one storefront form submission.
type SubmitParams struct {
	FullName        string
	Email           string
	Phone           string
	City            string
	InvestmentRange *string
	Message         *string
}

// Submit records a new application in the queue.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*models.FranchiseApplication, error) {
	fullName := strings.TrimSpace(params.FullName)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	phone := strings.TrimSpace(params.Phone)
	city := strings.TrimSpace(params.City)
	if fullName == "" || email == "" || phone == "" || city == "" {
		return nil, errors.New(errors.CodeValidation, "full name, email, phone and city are required")
	}

	application := &models.FranchiseApplication{
		ID:              uuid.New(),
		FullName:        fullName,
		Email:           email,
		Phone:           phone,
		City:            city,
		InvestmentRange: params.InvestmentRange,
		Message:         params.Message,
		Status:          enums.FranchiseStatusNew,
	}
	if err := s.repo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithField(ctx, "application_id", application.ID.String()), "franchise application submitted")
	return application, nil
}

// List returns applications for the admin queue, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]models.FranchiseApplication, error) {
	if status == "" {
		return s.repo.List(ctx, nil)
	}
	parsed := enums.FranchiseStatus(status)
	if !parsed.IsValid() {
		return nil, errors.New(errors.CodeValidation, "unknown status").WithDetails(map[string]any{"status": status})
	}
	return s.repo.List(ctx, &parsed)
}

// UpdateStatus moves an application through the queue lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FranchiseStatus) (*models.FranchiseApplication, error) {
	if !status.IsValid() {
		return nil, errors.New(errors.CodeValidation, "unknown status").WithDetails(map[string]any{"status": status})
	}

	application, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.New(errors.CodeNotFound, "application not found")
	}

	application.Status = status
	if err := s.repo.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}
