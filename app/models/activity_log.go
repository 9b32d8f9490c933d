package models

import "time"

// ActivityLog is one append-only audit record of a mutation.
type ActivityLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID *string   `json:"employee_id,omitempty" gorm:"index;type:uuid"`
	Action     string    `json:"action" gorm:"not null;type:varchar(50)"`
	EntityType string    `json:"entity_type" gorm:"not null;type:varchar(50)"`
	EntityID   *string   `json:"entity_id,omitempty" gorm:"type:uuid"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
