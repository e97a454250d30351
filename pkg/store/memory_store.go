package store

import (
	"sync"

	"recipehub/pkg/domain"
)

// MemoryStore keeps all records in-process. It is the default backend
// and the only one the demo deployment needs.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]domain.User   // key: user ID
	email   map[string]string        // email -> user ID
	recipes map[string]domain.Recipe // key: recipe ID
	order   []string                 // recipe IDs, newest first
	sess    map[string]string        // token -> user ID
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]domain.User),
		email:   make(map[string]string),
		recipes: make(map[string]domain.Recipe),
		sess:    make(map[string]string),
	}
}

// Seed installs the two ownerless demo recipes present at process start.
// Their nil owner makes them immutable for every authenticated user.
func (m *MemoryStore) Seed() {
	seed := []domain.Recipe{
		{
			ID:          "1",
			Title:       "Спагети Болонезе",
			ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
			Summary:     "Класически паста сос с кайма и домати.",
			Description: "Сварете спагетите според указанията на опаковката.\nСосът се приготвя с лук, чесън, кайма и домати.",
		},
		{
			ID:          "2",
			Title:       "Палачинки с плодове",
			ImageURL:    "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
			Summary:     "Пухкави палачинки със сезонни плодове.",
			Description: "Разбийте яйцата, млякото и брашното.\nИзпържете на среден огън и сервирайте с пресни плодове.",
		},
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range seed {
		if _, exists := m.recipes[r.ID]; exists {
			continue
		}
		m.recipes[r.ID] = r
		m.order = append(m.order, r.ID)
	}
}

// SaveUser registers or replaces a user.
func (m *MemoryStore) SaveUser(u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	m.email[u.Email] = u.ID
	return nil
}

// HasUserEmail checks if an email is already registered.
func (m *MemoryStore) HasUserEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.email[email]
	return ok, nil
}

// GetUserByEmail looks up a user by email.
func (m *MemoryStore) GetUserByEmail(email string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.email[email]; ok {
		u, exists := m.users[id]
		return u, exists, nil
	}
	return domain.User{}, false, nil
}

// GetUserByID returns a user by ID.
func (m *MemoryStore) GetUserByID(id string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

// UserCount returns the number of registered users.
func (m *MemoryStore) UserCount() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

// InsertRecipe stores a new recipe at the head of the listing order.
func (m *MemoryStore) InsertRecipe(r domain.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.recipes[r.ID]; !exists {
		m.order = append([]string{r.ID}, m.order...)
	}
	m.recipes[r.ID] = r
	return nil
}

// UpdateRecipe replaces an existing recipe in place, keeping its
// position in the listing order.
func (m *MemoryStore) UpdateRecipe(r domain.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.recipes[r.ID]; !exists {
		return nil
	}
	m.recipes[r.ID] = r
	return nil
}

// ListRecipes returns recipes newest first.
func (m *MemoryStore) ListRecipes() ([]domain.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Recipe, 0, len(m.order))
	for _, id := range m.order {
		if r, ok := m.recipes[id]; ok {
			res = append(res, r)
		}
	}
	return res, nil
}

// GetRecipe retrieves a recipe by ID.
func (m *MemoryStore) GetRecipe(id string) (domain.Recipe, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[id]
	return r, ok, nil
}

// DeleteRecipe removes a recipe and reports whether it existed.
func (m *MemoryStore) DeleteRecipe(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return false, nil
	}
	delete(m.recipes, id)
	filtered := m.order[:0]
	for _, item := range m.order {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	m.order = filtered
	return true, nil
}
