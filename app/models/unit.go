package models

import "time"

// Unit represents a rentable unit within a property.
type Unit struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PropertyID string     `json:"property_id" gorm:"not null;index;type:uuid"`
	UnitNumber string     `json:"unit_number" gorm:"not null"`
	Type       string     `json:"type" gorm:"type:varchar(50)"`
	Status     UnitStatus `json:"status" gorm:"not null;default:'Available';type:varchar(20)"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;references:ID"`
}
