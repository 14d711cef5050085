package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/types"
)

// Outlet is a physical fulfillment location customers order from.
type Outlet struct {
	ID        uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string        `gorm:"column:key;not null;uniqueIndex"`
	Name      string        `gorm:"column:name;not null"`
	Phone     string        `gorm:"column:phone;not null"`
	Address   types.Address `gorm:"column:address;type:jsonb;serializer:json"`
	IsActive  bool          `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
