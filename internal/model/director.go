package model

import "time"

// Director is a film director referenced by movies.
type Director struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	BirthYear int       `json:"birth_year" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Movies []Movie `json:"movies,omitempty" gorm:"foreignKey:DirectorID"`
}
