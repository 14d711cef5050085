package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/enums"
)

// Offer configures one BOGO or combo bundle.
type Offer struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Kind         enums.OfferKind `gorm:"column:kind;not null"`
	Title        string          `gorm:"column:title;not null"`
	Description  *string         `gorm:"column:description"`
	CategorySlug string          `gorm:"column:category_slug;not null;index"`
	IsActive     bool            `gorm:"column:is_active;not null;default:true"`
	Tiers        []OfferTier     `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	Items        OfferItems      `gorm:"column:items;type:jsonb;serializer:json"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// OfferTier is the bundle price for one normalized size within an offer's
// category group. OriginalPriceRupees is the undiscounted pair/set price used
// for the savings line.
type OfferTier struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OfferID             uuid.UUID `gorm:"column:offer_id;type:uuid;not null;index"`
	SizeName            string    `gorm:"column:size_name;not null"`
	PriceRupees         int       `gorm:"column:price_rupees;not null"`
	OriginalPriceRupees int       `gorm:"column:original_price_rupees;not null"`
}

// OfferItems lists the fixed contents of a combo offer.
type OfferItems []OfferItemRef

type OfferItemRef struct {
	Name     string `json:"name"`
	SizeName string `json:"size_name"`
	Qty      int    `json:"qty"`
}
