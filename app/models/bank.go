package models

import "time"

// Bank represents a bank cheques can be drawn on.
type Bank struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Branch    *string   `json:"branch,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
