package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	return &topic, err
}

// ListOrdered returns every topic in unlock-chain order.
func (r *TopicRepository) ListOrdered() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Order("sort_order asc").Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) Create(topic *model.Topic) error {
	return r.DB.Create(topic).Error
}
