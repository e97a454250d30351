package store

import "time"

// GORM models used by the Postgres backend.
type UserModel struct {
	ID        string    `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Secret    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type RecipeModel struct {
	ID          string  `gorm:"primaryKey"`
	Seq         int64   `gorm:"autoIncrement;uniqueIndex"`
	OwnerID     *string `gorm:"index"`
	Title       string  `gorm:"not null"`
	ImageURL    string  `gorm:"not null"`
	Summary     string
	Description string `gorm:"not null"`
}
