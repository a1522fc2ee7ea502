package model

// swagger:model Class
type Class struct {
	BaseModel

	Name     string `gorm:"size:255;not null" json:"name"`
	TutorID  uint   `gorm:"index;type:bigint unsigned;not null" json:"tutorId"`
	JoinCode string `gorm:"size:36;unique;not null" json:"joinCode"`
}

func (Class) TableName() string {
	return "classes"
}

type ClassMembership struct {
	BaseModel

	ClassID uint `gorm:"uniqueIndex:idx_membership_class_user;type:bigint unsigned;not null" json:"classId"`
	UserID  uint `gorm:"uniqueIndex:idx_membership_class_user;type:bigint unsigned;not null" json:"userId"`
}

func (ClassMembership) TableName() string {
	return "class_memberships"
}
