package model

import "time"

// PartialAnswer stores one answered question of an in-progress attempt. The
// unique index on (progress, question) is the arbiter for concurrent duplicate
// submissions: exactly one insert wins, the loser observes a duplicate error.
// All rows for a progress record are deleted when the attempt is finalized.
type PartialAnswer struct {
	BaseModel

	ProgressID     uint      `gorm:"uniqueIndex:idx_answer_progress_question;type:bigint unsigned;not null" json:"progressId"`
	QuestionID     uint      `gorm:"uniqueIndex:idx_answer_progress_question;type:bigint unsigned;not null" json:"questionId"`
	SelectedOption int       `gorm:"not null" json:"selectedOption"`
	IsCorrect      bool      `gorm:"default:false" json:"isCorrect"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

func (PartialAnswer) TableName() string {
	return "partial_answers"
}
