package model

type LevelKind string

const (
	LevelKindLesson LevelKind = "lesson"
	LevelKindQuiz   LevelKind = "quiz"
)

// Level is an atomic unit of content inside a topic. Lessons are graded in
// stars (0-3), quizzes as a percentage score against MinPassScore. Levels
// within a topic must be taken in Order.
//
// swagger:model Level
type Level struct {
	BaseModel

	TopicID     uint      `gorm:"uniqueIndex:idx_level_topic_order;type:bigint unsigned;not null" json:"topicId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Order       int       `gorm:"column:sort_order;uniqueIndex:idx_level_topic_order;not null" json:"order"`
	Kind        LevelKind `gorm:"type:enum('lesson','quiz');default:'lesson'" json:"kind"`
	// MinPassScore applies to quizzes only, 0-100.
	MinPassScore int `gorm:"default:0" json:"minPassScore"`
}

func (Level) TableName() string {
	return "levels"
}
