package model

// Minigame is a catalog entry for an educational minigame. It unlocks for a
// learner once the prerequisite level is in their completed set.
//
// swagger:model Minigame
type Minigame struct {
	BaseModel

	Title           string `gorm:"size:255;not null" json:"title"`
	Slug            string `gorm:"size:100;unique;not null" json:"slug"`
	Description     string `gorm:"type:text" json:"description"`
	RequiredLevelID uint   `gorm:"index;type:bigint unsigned;not null" json:"requiredLevelId"`
}

func (Minigame) TableName() string {
	return "minigames"
}
