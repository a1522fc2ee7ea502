package model

const (
	ActivityLogin         = "login"
	ActivityAnswerSubmit  = "answer_submit"
	ActivityLevelComplete = "level_complete"
	ActivityClassJoin     = "class_join"
)

// ActivityLog records learner events for tutor dashboards. Writes are
// best-effort and never fail the operation that produced them.
type ActivityLog struct {
	UUIDBase

	UserID  uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Action  string `gorm:"size:50;index;not null" json:"action"`
	LevelID *uint  `gorm:"type:bigint unsigned" json:"levelId,omitempty"`
	Detail  string `gorm:"type:json" json:"detail,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
