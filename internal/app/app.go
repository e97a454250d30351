package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"recipehub/pkg/auth"
	"recipehub/pkg/domain"
	"recipehub/pkg/store"
)

// Config holds runtime configuration for the core application.
type Config struct {
	StoreDriver      string
	DatabaseURL      string
	SessionStrategy  string
	SessionTTL       time.Duration
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	JWTIssuer        string
	JWTAudience      string
	CredentialScheme string
	SeedDemoData     bool

	// Injection points for tests.
	Store       store.Store
	Sessions    store.SessionStore
	Credentials auth.Verifier
}

// App is the core application service wiring storage, sessions, and
// credential verification together.
type App struct {
	store       store.Store
	sessions    store.SessionStore
	credentials auth.Verifier

	// Serializes read-modify-write sequences (ownership check then
	// mutate, email check then save) against concurrent writers.
	writeMu sync.Mutex
}

// New constructs the application from configuration.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		switch cfg.StoreDriver {
		case "", "memory":
			mem := store.NewMemoryStore()
			if cfg.SeedDemoData {
				mem.Seed()
			}
			dataStore = mem
		case "postgres":
			if cfg.DatabaseURL == "" {
				return nil, fmt.Errorf("database URL required for postgres store")
			}
			pg, err := store.NewGormStore(cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("init postgres store: %w", err)
			}
			if cfg.SeedDemoData {
				if err := pg.Seed(); err != nil {
					return nil, fmt.Errorf("seed postgres store: %w", err)
				}
			}
			dataStore = pg
		default:
			return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
		}
	}

	sessionStore := cfg.Sessions
	if sessionStore == nil {
		switch cfg.SessionStrategy {
		case "", "memory":
			sessionStore = store.NewMemorySessionStore()
		case "redis":
			if strings.TrimSpace(cfg.RedisAddr) == "" {
				return nil, fmt.Errorf("redisAddr is required for redis session strategy")
			}
			sessionStore = store.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionTTL)
		case "jwt":
			var revoker store.TokenRevoker = store.NewMemoryTokenRevoker()
			if strings.TrimSpace(cfg.RedisAddr) != "" {
				revoker = store.NewRedisTokenRevoker(cfg.RedisAddr, cfg.RedisPassword)
			}
			jwtStore, err := store.NewJWTSessionStore(cfg.JWTSecret, cfg.SessionTTL, revoker, store.JWTOptions{
				Issuer:   cfg.JWTIssuer,
				Audience: cfg.JWTAudience,
			})
			if err != nil {
				return nil, fmt.Errorf("init jwt session store: %w", err)
			}
			sessionStore = jwtStore
		default:
			return nil, fmt.Errorf("unknown session strategy %q", cfg.SessionStrategy)
		}
	}

	credentials := cfg.Credentials
	if credentials == nil {
		switch cfg.CredentialScheme {
		case "", "plain":
			credentials = auth.PlainVerifier{}
		case "bcrypt":
			credentials = auth.BcryptVerifier{}
		default:
			return nil, fmt.Errorf("unknown credential scheme %q", cfg.CredentialScheme)
		}
	}

	return &App{
		store:       dataStore,
		sessions:    sessionStore,
		credentials: credentials,
	}, nil
}

// Register creates an account and issues its first session token.
func (a *App) Register(email, password string) (domain.User, string, error) {
	if email == "" || password == "" {
		return domain.User{}, "", ErrFieldsRequired
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	exists, err := a.store.HasUserEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, "", ErrEmailTaken
	}
	secret, err := a.credentials.Hash(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("store credential: %w", err)
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Secret:    secret,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.SaveUser(user); err != nil {
		return domain.User{}, "", fmt.Errorf("save user: %w", err)
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login validates credentials and issues a fresh session token.
// Previously issued tokens for the account stay valid.
func (a *App) Login(email, password string) (domain.User, string, error) {
	user, ok, err := a.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("fetch user: %w", err)
	}
	if !ok || !a.credentials.Check(password, user.Secret) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Logout removes the session for the token. Unknown or already-removed
// tokens are a silent no-op.
func (a *App) Logout(token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.DeleteSession(token)
}

// UserFromToken resolves a session token to its account.
func (a *App) UserFromToken(token string) (domain.User, bool) {
	uid, ok, err := a.sessions.GetUserIDByToken(token)
	if err != nil || !ok {
		return domain.User{}, false
	}
	user, found, err := a.store.GetUserByID(uid)
	if err != nil || !found {
		return domain.User{}, false
	}
	return user, true
}

// ListRecipes returns all recipes, newest first.
func (a *App) ListRecipes() ([]domain.Recipe, error) {
	return a.store.ListRecipes()
}

// GetRecipe retrieves a recipe by ID.
func (a *App) GetRecipe(id string) (domain.Recipe, error) {
	recipe, ok, err := a.store.GetRecipe(id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("fetch recipe: %w", err)
	}
	if !ok {
		return domain.Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

// CreateRecipe validates the input and inserts a new recipe owned by
// the caller at the head of the listing.
func (a *App) CreateRecipe(owner domain.User, input domain.RecipeInput) (domain.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return domain.Recipe{}, err
	}
	ownerID := owner.ID
	recipe := domain.Recipe{
		ID:          uuid.NewString(),
		OwnerID:     &ownerID,
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		Summary:     input.Summary,
		Description: input.Description,
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	if err := a.store.InsertRecipe(recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("insert recipe: %w", err)
	}
	return recipe, nil
}

// UpdateRecipe replaces the content fields of a recipe the caller owns.
// Identity and owner are preserved.
func (a *App) UpdateRecipe(caller domain.User, id string, input domain.RecipeInput) (domain.Recipe, error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	recipe, err := a.ownedRecipe(caller, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if err := validateRecipeInput(input); err != nil {
		return domain.Recipe{}, err
	}
	recipe.Title = input.Title
	recipe.ImageURL = input.ImageURL
	recipe.Summary = input.Summary
	recipe.Description = input.Description
	if err := a.store.UpdateRecipe(recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe the caller owns. A repeated delete of
// the same ID fails with ErrRecipeNotFound.
func (a *App) DeleteRecipe(caller domain.User, id string) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if _, err := a.ownedRecipe(caller, id); err != nil {
		return err
	}
	deleted, err := a.store.DeleteRecipe(id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if !deleted {
		return ErrRecipeNotFound
	}
	return nil
}

// ownedRecipe loads a recipe and enforces the ownership gate. Callers
// must hold writeMu when the result feeds a mutation.
func (a *App) ownedRecipe(caller domain.User, id string) (domain.Recipe, error) {
	recipe, ok, err := a.store.GetRecipe(id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("fetch recipe: %w", err)
	}
	if !ok {
		return domain.Recipe{}, ErrRecipeNotFound
	}
	if recipe.OwnerID == nil || *recipe.OwnerID != caller.ID {
		return domain.Recipe{}, ErrNotOwner
	}
	return recipe, nil
}

func validateRecipeInput(input domain.RecipeInput) error {
	if input.Title == "" || input.ImageURL == "" || input.Description == "" {
		return ErrFieldsRequired
	}
	return nil
}
