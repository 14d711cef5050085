package outlets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
)

// Repository handles outlet persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, outlet *models.Outlet) error
	Update(ctx context.Context, outlet *models.Outlet) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Outlet, error)
	FindByKey(ctx context.Context, key string) (*models.Outlet, error)
	List(ctx context.Context, includeInactive bool) ([]models.Outlet, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an outlet repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, outlet *models.Outlet) error {
	return r.db.WithContext(ctx).Create(outlet).Error
}

func (r *repository) Update(ctx context.Context, outlet *models.Outlet) error {
	return r.db.WithContext(ctx).Save(outlet).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Outlet, error) {
	var outlet models.Outlet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&outlet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &outlet, nil
}

func (r *repository) FindByKey(ctx context.Context, key string) (*models.Outlet, error) {
	var outlet models.Outlet
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&outlet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &outlet, nil
}

func (r *repository) List(ctx context.Context, includeInactive bool) ([]models.Outlet, error) {
	query := r.db.WithContext(ctx).Model(&models.Outlet{}).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var list []models.Outlet
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
