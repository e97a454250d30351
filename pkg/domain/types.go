package domain

import "time"

// User is a registered account. The stored credential is never serialized.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Secret    string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Recipe is the single shared resource type. OwnerID is nil for seed
// records, which makes them immutable for every caller.
type Recipe struct {
	ID          string  `json:"_id"`
	OwnerID     *string `json:"_ownerId"`
	Title       string  `json:"title"`
	ImageURL    string  `json:"imageUrl"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
}

// RecipeInput carries the client-editable recipe fields.
type RecipeInput struct {
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}
