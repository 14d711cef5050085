package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/crustcraft/crustcraft-backend/pkg/enums"
)

// FranchiseApplication is one submission from the storefront franchise form.
type FranchiseApplication struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FullName        string                `gorm:"column:full_name;not null"`
	Email           string                `gorm:"column:email;not null"`
	Phone           string                `gorm:"column:phone;not null"`
	City            string                `gorm:"column:city;not null"`
	InvestmentRange *string               `gorm:"column:investment_range"`
	Message         *string               `gorm:"column:message"`
	Status          enums.FranchiseStatus `gorm:"column:status;not null;default:'new'"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
