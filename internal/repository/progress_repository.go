package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndLevel(userID, levelID uint) (*model.LevelProgress, error) {
	var p model.LevelProgress
	if err := r.DB.Where("user_id = ? AND level_id = ?", userID, levelID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate returns the learner's progress row for a level, creating a
// zero-value row on first interaction.
func (r *ProgressRepository) GetOrCreate(tx *gorm.DB, userID, levelID uint) (*model.LevelProgress, error) {
	if tx == nil {
		tx = r.DB
	}
	var p model.LevelProgress
	err := tx.Where("user_id = ? AND level_id = ?", userID, levelID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	p = model.LevelProgress{UserID: userID, LevelID: levelID}
	if err := tx.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.LevelProgress, error) {
	var rows []model.LevelProgress
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// InProgressLevelIDs returns the level ids that have at least one partial
// answer recorded for the learner, i.e. an attempt is underway.
func (r *ProgressRepository) InProgressLevelIDs(userID uint) (map[uint]bool, error) {
	var levelIDs []uint
	err := r.DB.Model(&model.PartialAnswer{}).
		Joins("JOIN level_progress ON level_progress.id = partial_answers.progress_id").
		Where("level_progress.user_id = ?", userID).
		Distinct().
		Pluck("level_progress.level_id", &levelIDs).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(levelIDs))
	for _, id := range levelIDs {
		set[id] = true
	}
	return set, nil
}

func (r *ProgressRepository) CreatePartialAnswer(tx *gorm.DB, answer *model.PartialAnswer) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(answer).Error
}

func (r *ProgressRepository) FindPartialAnswer(progressID, questionID uint) (*model.PartialAnswer, error) {
	var a model.PartialAnswer
	if err := r.DB.Where("progress_id = ? AND question_id = ?", progressID, questionID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ProgressRepository) ListPartialAnswers(progressID uint) ([]model.PartialAnswer, error) {
	var answers []model.PartialAnswer
	err := r.DB.Where("progress_id = ?", progressID).Order("answered_at asc").Find(&answers).Error
	return answers, err
}

// CountPartialAnswers returns (total, correct) for a progress row.
func (r *ProgressRepository) CountPartialAnswers(tx *gorm.DB, progressID uint) (int, int, error) {
	if tx == nil {
		tx = r.DB
	}
	var total, correct int64
	if err := tx.Model(&model.PartialAnswer{}).Where("progress_id = ?", progressID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := tx.Model(&model.PartialAnswer{}).Where("progress_id = ? AND is_correct = ?", progressID, true).Count(&correct).Error; err != nil {
		return 0, 0, err
	}
	return int(total), int(correct), nil
}

// DeletePartialAnswers removes every in-progress answer for a progress row.
// Hard delete: a consumed attempt leaves no rows behind to mark the level as
// in progress.
func (r *ProgressRepository) DeletePartialAnswers(tx *gorm.DB, progressID uint) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Unscoped().Where("progress_id = ?", progressID).Delete(&model.PartialAnswer{}).Error
}

func (r *ProgressRepository) Update(tx *gorm.DB, progress *model.LevelProgress) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Save(progress).Error
}
