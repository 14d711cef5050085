package outlets

import (
	"context"
	goerrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/internal/cart"
	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/types"
)

// ServiceParams groups dependencies for the outlet service.
type ServiceParams struct {
	Repo Repository
}

// Service manages the outlet directory customers order from.
type Service struct {
	repo Repository
}

// NewService builds an outlet service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, goerrors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// CreateParams describe a new outlet.
type CreateParams struct {
	Key     string
	Name    string
	Phone   string
	Address types.Address
}

// UpdateParams carries partial outlet edits; nil fields are left untouched.
type UpdateParams struct {
	Name     *string
	Phone    *string
	Address  *types.Address
	IsActive *bool
}

// ListActive returns the outlets shown to customers.
func (s *Service) ListActive(ctx context.Context) ([]models.Outlet, error) {
	return s.repo.List(ctx, false)
}

// ListAll returns every outlet, including deactivated ones, for the admin UI.
func (s *Service) ListAll(ctx context.Context) ([]models.Outlet, error) {
	return s.repo.List(ctx, true)
}

// Directory projects the active outlets into the cart engine's lookup table.
func (s *Service) Directory(ctx context.Context) (cart.Directory, error) {
	active, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	dir := make(cart.Directory, len(active))
	for _, o := range active {
		dir[o.Key] = cart.Outlet{
			Key:     o.Key,
			Name:    o.Name,
			Phone:   o.Phone,
			Address: o.Address.Oneline(),
		}
	}
	return dir, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*models.Outlet, error) {
	key := strings.TrimSpace(params.Key)
	if key == "" || params.Name == "" || params.Phone == "" {
		return nil, errors.New(errors.CodeValidation, "key, name and phone are required")
	}

	existing, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(errors.CodeConflict, "outlet key already exists").WithDetails(map[string]any{"key": key})
	}

	outlet := &models.Outlet{
		ID:       uuid.New(),
		Key:      key,
		Name:     params.Name,
		Phone:    params.Phone,
		Address:  params.Address,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.Outlet, error) {
	outlet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, errors.New(errors.CodeNotFound, "outlet not found")
	}

	if params.Name != nil {
		outlet.Name = *params.Name
	}
	if params.Phone != nil {
		outlet.Phone = *params.Phone
	}
	if params.Address != nil {
		outlet.Address = *params.Address
	}
	if params.IsActive != nil {
		outlet.IsActive = *params.IsActive
	}

	if err := s.repo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}
