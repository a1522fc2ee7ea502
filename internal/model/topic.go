package model

// Topic is an ordered unit of curriculum content. Topics form a strict
// left-to-right unlock chain: a topic opens once the previous topic is fully
// completed and the learner has earned at least StarsRequired stars on it.
// The first topic in the sequence is always open.
//
// swagger:model Topic
type Topic struct {
	BaseModel

	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Order         int    `gorm:"column:sort_order;uniqueIndex;not null" json:"order"`
	StarsRequired int    `gorm:"default:0" json:"starsRequired"`
}

func (Topic) TableName() string {
	return "topics"
}
