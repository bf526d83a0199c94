package model

import "time"

// Roles assignable to a user account. The role is fixed at registration and
// no endpoint mutates it afterwards; tokens carry a snapshot of it.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. Usernames are stored lower-cased and
// unique; the password hash is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role,omitempty" gorm:"size:50;not null;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
