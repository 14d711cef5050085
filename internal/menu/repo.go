package menu

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
)

// ListQuery filters menu item listings.
type ListQuery struct {
	CategorySlug    string
	FeaturedOnly    bool
	IncludeInactive bool
}

// Repository handles menu item persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	ReplaceSizes(ctx context.Context, itemID uuid.UUID, sizes []models.MenuItemSize) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	List(ctx context.Context, query ListQuery) ([]models.MenuItem, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a menu repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Sizes").Save(item).Error
}

// ReplaceSizes swaps an item's size tiers atomically.
func (r *repository) ReplaceSizes(ctx context.Context, itemID uuid.UUID, sizes []models.MenuItemSize) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", itemID).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		if len(sizes) == 0 {
			return nil
		}
		return tx.Create(&sizes).Error
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.MenuItem{}).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]models.MenuItem, error) {
	q := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("name ASC")
	if !query.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if query.CategorySlug != "" {
		q = q.Where("category_slug = ?", query.CategorySlug)
	}
	if query.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
