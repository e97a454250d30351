package store

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	"recipehub/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&UserModel{}, &RecipeModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Seed installs the demo recipes unless they are already present.
// Rows are written oldest-last so that the seq-descending listing keeps
// the original seed order.
func (s *GormStore) Seed() error {
	seed := []domain.Recipe{
		{
			ID:          "2",
			Title:       "Палачинки с плодове",
			ImageURL:    "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
			Summary:     "Пухкави палачинки със сезонни плодове.",
			Description: "Разбийте яйцата, млякото и брашното.\nИзпържете на среден огън и сервирайте с пресни плодове.",
		},
		{
			ID:          "1",
			Title:       "Спагети Болонезе",
			ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
			Summary:     "Класически паста сос с кайма и домати.",
			Description: "Сварете спагетите според указанията на опаковката.\nСосът се приготвя с лук, чесън, кайма и домати.",
		},
	}
	for _, r := range seed {
		model := recipeToModel(r)
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
			return fmt.Errorf("seed recipe %s: %w", r.ID, err)
		}
	}
	return nil
}

// SaveUser stores or updates a user.
func (s *GormStore) SaveUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "secret"}),
	}).Create(&model).Error
}

// HasUserEmail checks if an email is already registered.
func (s *GormStore) HasUserEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserByEmail looks up a user by email.
func (s *GormStore) GetUserByEmail(email string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// GetUserByID returns a user by ID.
func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// UserCount returns the number of registered users.
func (s *GormStore) UserCount() (int, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// InsertRecipe stores a new recipe. The auto-incremented seq keeps the
// newest-first listing order.
func (s *GormStore) InsertRecipe(r domain.Recipe) error {
	model := recipeToModel(r)
	return s.db.Create(&model).Error
}

// UpdateRecipe replaces the content fields of an existing recipe.
func (s *GormStore) UpdateRecipe(r domain.Recipe) error {
	return s.db.Model(&RecipeModel{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"title":       r.Title,
			"image_url":   r.ImageURL,
			"summary":     r.Summary,
			"description": r.Description,
		}).Error
}

// ListRecipes returns recipes newest first.
func (s *GormStore) ListRecipes() ([]domain.Recipe, error) {
	var models []RecipeModel
	if err := s.db.Order("seq DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Recipe, 0, len(models))
	for _, m := range models {
		res = append(res, recipeFromModel(m))
	}
	return res, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *GormStore) GetRecipe(id string) (domain.Recipe, bool, error) {
	var model RecipeModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Recipe{}, false, nil
		}
		return domain.Recipe{}, false, err
	}
	return recipeFromModel(model), true, nil
}

// DeleteRecipe removes a recipe and reports whether it existed.
func (s *GormStore) DeleteRecipe(id string) (bool, error) {
	res := s.db.Delete(&RecipeModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Secret:    u.Secret,
		CreatedAt: u.CreatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Secret:    m.Secret,
		CreatedAt: m.CreatedAt,
	}
}

func recipeToModel(r domain.Recipe) RecipeModel {
	return RecipeModel{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Summary:     r.Summary,
		Description: r.Description,
	}
}

func recipeFromModel(m RecipeModel) domain.Recipe {
	return domain.Recipe{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		ImageURL:    m.ImageURL,
		Summary:     m.Summary,
		Description: m.Description,
	}
}
