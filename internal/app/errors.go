package app

import "errors"

var (
	// ErrFieldsRequired is returned when a required field is empty or missing.
	ErrFieldsRequired = errors.New("Missing fields")

	// ErrEmailTaken is returned when registering an already known email.
	ErrEmailTaken = errors.New("Email is already registered")

	// ErrInvalidCredentials is returned when email and password do not match
	// an account. The message must not enable account enumeration.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrUnauthorized is returned when a mutating call carries no valid token.
	ErrUnauthorized = errors.New("Invalid access token")

	// ErrNotOwner is returned when an authenticated caller mutates a recipe
	// it does not own. Seed recipes have no owner and always fail this check.
	ErrNotOwner = errors.New("Not allowed")

	// ErrRecipeNotFound is returned when no recipe has the given ID.
	ErrRecipeNotFound = errors.New("Recipe not found")
)
