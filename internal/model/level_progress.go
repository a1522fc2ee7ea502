package model

import "time"

// LevelProgress is the per-learner record for one level, created lazily on
// first interaction. Completed is sticky and Stars/Score hold the best-ever
// result: none of them may regress across attempts.
//
// swagger:model LevelProgress
type LevelProgress struct {
	BaseModel

	UserID      uint       `gorm:"uniqueIndex:idx_progress_user_level;type:bigint unsigned;not null" json:"userId"`
	LevelID     uint       `gorm:"uniqueIndex:idx_progress_user_level;type:bigint unsigned;not null" json:"levelId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Stars       int        `gorm:"default:0" json:"stars"` // lessons only, 0-3
	Score       int        `gorm:"default:0" json:"score"` // quizzes only, 0-100
	AttemptCount int       `gorm:"default:0" json:"attemptCount"`
}

func (LevelProgress) TableName() string {
	return "level_progress"
}
