package models

import "time"

// Property represents a managed building or compound.
type Property struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OwnerID   *string   `json:"owner_id,omitempty" gorm:"index;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Owner *Owner  `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Units []*Unit `json:"units,omitempty" gorm:"foreignKey:PropertyID;references:ID"`
}
