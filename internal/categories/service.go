package categories

import (
	"context"
	goerrors "errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ServiceParams groups dependencies for the category service.
type ServiceParams struct {
	Repo Repository
}

// Service manages menu categories.
type Service struct {
	repo Repository
}

// NewService builds a category service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// CreateParams describe a new category.
type CreateParams struct {
	Slug      string
	Name      string
	SortOrder int
}

// UpdateParams carries partial category edits.
type UpdateParams struct {
	Name      *string
	SortOrder *int
	IsActive  *bool
}

func (s *Service) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) ListAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New(errors.CodeNotFound, "category not found")
	}
	return category, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*models.Category, error) {
	slug := strings.ToLower(strings.TrimSpace(params.Slug))
	if !slugRe.MatchString(slug) {
		return nil, errors.New(errors.CodeValidation, "slug must be lowercase kebab-case")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "name is required")
	}

	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(errors.CodeConflict, "category slug already exists").WithDetails(map[string]any{"slug": slug})
	}

	category := &models.Category{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      strings.TrimSpace(params.Name),
		SortOrder: params.SortOrder,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New(errors.CodeNotFound, "category not found")
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, errors.New(errors.CodeValidation, "name cannot be empty")
		}
		category.Name = strings.TrimSpace(*params.Name)
	}
	if params.SortOrder != nil {
		category.SortOrder = *params.SortOrder
	}
	if params.IsActive != nil {
		category.IsActive = *params.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.New(errors.CodeNotFound, "category not found")
	}
	return s.repo.Delete(ctx, id)
}
