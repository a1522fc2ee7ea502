package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) Create(level *model.Level) error {
	return r.DB.Create(level).Error
}

func (r *LevelRepository) FindByID(id uint) (*model.Level, error) {
	var level model.Level
	if err := r.DB.First(&level, id).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// ListOrdered returns all levels ordered by (topic, sort order), the canonical
// ordering of the roadmap.
func (r *LevelRepository) ListOrdered() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Order("topic_id asc, sort_order asc").Find(&levels).Error
	return levels, err
}

func (r *LevelRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Level{}).Count(&count).Error
	return count, err
}

func (r *LevelRepository) GetQuestionsByLevel(levelID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("level_id = ?", levelID).Order("sort_order asc").Find(&qs).Error
	return qs, err
}

func (r *LevelRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *LevelRepository) FindSolutionByQuestion(questionID uint) (*model.Solution, error) {
	var sol model.Solution
	if err := r.DB.Where("question_id = ?", questionID).First(&sol).Error; err != nil {
		return nil, err
	}
	return &sol, nil
}

func (r *LevelRepository) CreateSolution(solution *model.Solution) error {
	return r.DB.Create(solution).Error
}
