package models

import "time"

// Employee represents a back-office user.
type Employee struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string       `json:"email" gorm:"not null;uniqueIndex"`
	Password  string       `json:"-" gorm:"not null"`
	FirstName string       `json:"first_name" gorm:"not null"`
	LastName  string       `json:"last_name" gorm:"not null"`
	Phone     *string      `json:"phone,omitempty"`
	Role      EmployeeRole `json:"role" gorm:"not null;default:'staff';type:varchar(20)"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
