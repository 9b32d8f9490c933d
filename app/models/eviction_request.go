package models

import "time"

// EvictionRequest represents a legal petition against a tenancy, reviewed by
// a manager through the same two-state flow as payment extensions.
type EvictionRequest struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LeaseID      string         `json:"lease_id" gorm:"not null;index;type:uuid"`
	RequestedBy  *string        `json:"requested_by,omitempty" gorm:"type:uuid"`
	Reason       string         `json:"reason" gorm:"not null"`
	Status       EvictionStatus `json:"status" gorm:"not null;default:'Pending';type:varchar(20)"`
	ManagerNotes *string        `json:"manager_notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
