package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type MinigameRepository struct {
	DB *gorm.DB
}

func NewMinigameRepository(db *gorm.DB) *MinigameRepository {
	return &MinigameRepository{DB: db}
}

func (r *MinigameRepository) Create(game *model.Minigame) error {
	return r.DB.Create(game).Error
}

func (r *MinigameRepository) FindByID(id uint) (*model.Minigame, error) {
	var game model.Minigame
	if err := r.DB.First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *MinigameRepository) ListAll() ([]model.Minigame, error) {
	var games []model.Minigame
	err := r.DB.Order("id asc").Find(&games).Error
	return games, err
}
