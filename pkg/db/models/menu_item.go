package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MenuItem is one orderable product with per-size pricing.
type MenuItem struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID   uuid.UUID      `gorm:"column:category_id;type:uuid;not null"`
	CategorySlug string         `gorm:"column:category_slug;not null;index"`
	Name         string         `gorm:"column:name;not null"`
	Description  *string        `gorm:"column:description"`
	Toppings     pq.StringArray `gorm:"column:toppings;type:text[]"`
	IsVeg        bool           `gorm:"column:is_veg;not null;default:true"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	IsFeatured   bool           `gorm:"column:is_featured;not null;default:false"`
	ImageURL     *string        `gorm:"column:image_url"`
	Sizes        []MenuItemSize `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// MenuItemSize carries the price for one size tier of a menu item.
type MenuItemSize struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MenuItemID  uuid.UUID `gorm:"column:menu_item_id;type:uuid;not null;index"`
	SizeName    string    `gorm:"column:size_name;not null"`
	PriceRupees int       `gorm:"column:price_rupees;not null"`
	SortOrder   int       `gorm:"column:sort_order;not null;default:0"`
}
