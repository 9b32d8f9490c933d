package models

import "time"

// Tenant represents a person or business renting a unit.
type Tenant struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	EmiratesID   *string   `json:"emirates_id,omitempty" gorm:"type:varchar(50)"`
	IsCommercial bool      `json:"is_commercial" gorm:"default:false"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FullName returns the tenant's display name.
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}
