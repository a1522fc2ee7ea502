package model

// swagger:model Question
type Question struct {
	BaseModel

	LevelID uint   `gorm:"index;type:bigint unsigned;not null" json:"levelId"`
	Order   int    `gorm:"column:sort_order;default:0" json:"order"`
	Prompt  string `gorm:"type:text;not null" json:"prompt"`
	Options string `gorm:"type:json" json:"options"` // JSON array of option texts
}

func (Question) TableName() string {
	return "questions"
}

// Solution holds the canonical correct option for a question. It is kept in
// its own table so question payloads can be served to clients without ever
// carrying the answer; correctness is only recomputed server-side.
type Solution struct {
	BaseModel

	QuestionID         uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"questionId"`
	LevelID            uint `gorm:"index;type:bigint unsigned;not null" json:"levelId"`
	CorrectOptionIndex int  `gorm:"not null" json:"correctOptionIndex"`
}

func (Solution) TableName() string {
	return "solutions"
}
