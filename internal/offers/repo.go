package offers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crustcraft/crustcraft-backend/pkg/db/models"
)

// Repository handles offer persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, offer *models.Offer) error
	Update(ctx context.Context, offer *models.Offer) error
	ReplaceTiers(ctx context.Context, offerID uuid.UUID, tiers []models.OfferTier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	List(ctx context.Context, includeInactive bool) ([]models.Offer, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an offer repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, offer *models.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *repository) Update(ctx context.Context, offer *models.Offer) error {
	return r.db.WithContext(ctx).Omit("Tiers").Save(offer).Error
}

// ReplaceTiers swaps an offer's price tiers atomically.
func (r *repository) ReplaceTiers(ctx context.Context, offerID uuid.UUID, tiers []models.OfferTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", offerID).Delete(&models.OfferTier{}).Error; err != nil {
			return err
		}
		if len(tiers) == 0 {
			return nil
		}
		return tx.Create(&tiers).Error
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&models.OfferTier{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Offer{}).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.WithContext(ctx).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("size_name ASC")
		}).
		Where("id = ?", id).
		First(&offer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *repository) List(ctx context.Context, includeInactive bool) ([]models.Offer, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Offer{}).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("size_name ASC")
		}).
		Order("created_at ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var offers []models.Offer
	if err := q.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}
