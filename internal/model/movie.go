package model

import "time"

// Movie is a catalog entry pointing at its director.
type Movie struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null;index"`
	Year       int       `json:"year" gorm:"not null"`
	DirectorID uint      `json:"director_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Director *Director `json:"director,omitempty" gorm:"foreignKey:DirectorID"`
}
