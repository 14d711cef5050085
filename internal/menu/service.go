package menu

import (
	"context"
	goerrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
)

type categoryFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// ServiceParams groups dependencies for the menu service.
type ServiceParams struct {
	Repo       Repository
	Categories categoryFinder
}

// Service manages the orderable catalog.
type Service struct {
	repo       Repository
	categories categoryFinder
}

// NewService builds a menu service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	if params.Categories == nil {
		return nil, goerrors.New("category finder is required")
	}
	return &Service{repo: params.Repo, categories: params.Categories}, nil
}

// SizeParams is one price tier on a menu item.
type SizeParams struct {
	SizeName    string
	PriceRupees int
}

// CreateParams describe a new menu item.
type CreateParams struct {
	CategorySlug string
	Name         string
	Description  *string
	Toppings     []string
	IsVeg        bool
	IsFeatured   bool
	ImageURL     *string
	Sizes        []SizeParams
}

// UpdateParams carries partial menu item edits. A non-nil Sizes slice
// replaces every existing tier.
type UpdateParams struct {
	Name        *string
	Description *string
	Toppings    []string
	IsVeg       *bool
	IsActive    *bool
	IsFeatured  *bool
	ImageURL    *string
	Sizes       []SizeParams
}

// List returns the customer-facing menu, optionally scoped to one category.
func (s *Service) List(ctx context.Context, categorySlug string) ([]models.MenuItem, error) {
	return s.repo.List(ctx, ListQuery{CategorySlug: categorySlug})
}

// Featured returns the items highlighted on the storefront landing page.
func (s *Service) Featured(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.List(ctx, ListQuery{FeaturedOnly: true})
}

// ListAll returns every item for the admin catalog view.
func (s *Service) ListAll(ctx context.Context, categorySlug string) ([]models.MenuItem, error) {
	return s.repo.List(ctx, ListQuery{CategorySlug: categorySlug, IncludeInactive: true})
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New(errors.CodeNotFound, "menu item not found")
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*models.MenuItem, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "name is required")
	}
	sizes, err := validateSizes(params.Sizes)
	if err != nil {
		return nil, err
	}

	category, err := s.categories.FindBySlug(ctx, params.CategorySlug)
	if err != nil {
		return nil, err
	}

	itemID := uuid.New()
	for i := range sizes {
		sizes[i].ID = uuid.New()
		sizes[i].MenuItemID = itemID
		sizes[i].SortOrder = i
	}

	item := &models.MenuItem{
		ID:           itemID,
		CategoryID:   category.ID,
		CategorySlug: category.Slug,
		Name:         strings.TrimSpace(params.Name),
		Description:  params.Description,
		Toppings:     params.Toppings,
		IsVeg:        params.IsVeg,
		IsActive:     true,
		IsFeatured:   params.IsFeatured,
		ImageURL:     params.ImageURL,
		Sizes:        sizes,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New(errors.CodeNotFound, "menu item not found")
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, errors.New(errors.CodeValidation, "name cannot be empty")
		}
		item.Name = strings.TrimSpace(*params.Name)
	}
	if params.Description != nil {
		item.Description = params.Description
	}
	if params.Toppings != nil {
		item.Toppings = params.Toppings
	}
	if params.IsVeg != nil {
		item.IsVeg = *params.IsVeg
	}
	if params.IsActive != nil {
		item.IsActive = *params.IsActive
	}
	if params.IsFeatured != nil {
		item.IsFeatured = *params.IsFeatured
	}
	if params.ImageURL != nil {
		item.ImageURL = params.ImageURL
	}

	if params.Sizes != nil {
		sizes, err := validateSizes(params.Sizes)
		if err != nil {
			return nil, err
		}
		for i := range sizes {
			sizes[i].ID = uuid.New()
			sizes[i].MenuItemID = item.ID
			sizes[i].SortOrder = i
		}
		if err := s.repo.ReplaceSizes(ctx, item.ID, sizes); err != nil {
			return nil, err
		}
		item.Sizes = sizes
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.New(errors.CodeNotFound, "menu item not found")
	}
	return s.repo.Delete(ctx, id)
}

func validateSizes(params []SizeParams) ([]models.MenuItemSize, error) {
	if len(params) == 0 {
		return nil, errors.New(errors.CodeValidation, "at least one size is required")
	}

	seen := map[string]bool{}
	sizes := make([]models.MenuItemSize, 0, len(params))
	for _, p := range params {
		name := strings.TrimSpace(p.SizeName)
		if name == "" {
			return nil, errors.New(errors.CodeValidation, "size name is required")
		}
		if seen[name] {
			return nil, errors.New(errors.CodeValidation, "duplicate size name").WithDetails(map[string]any{"size_name": name})
		}
		seen[name] = true
		if p.PriceRupees <= 0 {
			return nil, errors.New(errors.CodeValidation, "size price must be positive").WithDetails(map[string]any{"size_name": name})
		}
		sizes = append(sizes, models.MenuItemSize{SizeName: name, PriceRupees: p.PriceRupees})
	}
	return sizes, nil
}
