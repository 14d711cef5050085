package franchise

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
	"github.com/crustcraft/crustcraft-backend/pkg/enums"
)

// Repository handles franchise application persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, application *models.FranchiseApplication) error
	Update(ctx context.Context, application *models.FranchiseApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.FranchiseApplication, error)
	List(ctx context.Context, status *enums.FranchiseStatus) ([]models.FranchiseApplication, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a franchise repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, application *models.FranchiseApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *repository) Update(ctx context.Context, application *models.FranchiseApplication) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.FranchiseApplication, error) {
	var application models.FranchiseApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *repository) List(ctx context.Context, status *enums.FranchiseStatus) ([]models.FranchiseApplication, error) {
	query := r.db.WithContext(ctx).Model(&models.FranchiseApplication{}).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var list []models.FranchiseApplication
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
