package store

import "recipehub/pkg/domain"

// Store defines persistence operations for users and recipes.
type Store interface {
	// users
	SaveUser(domain.User) error
	HasUserEmail(email string) (bool, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)
	UserCount() (int, error)

	// recipes
	InsertRecipe(domain.Recipe) error
	UpdateRecipe(domain.Recipe) error
	ListRecipes() ([]domain.Recipe, error)
	GetRecipe(id string) (domain.Recipe, bool, error)
	DeleteRecipe(id string) (bool, error)
}

// SessionStore persists session tokens.
type SessionStore interface {
	NewSession(userID string) (string, error)
	GetUserIDByToken(token string) (string, bool, error)
	DeleteSession(token string) error
}
