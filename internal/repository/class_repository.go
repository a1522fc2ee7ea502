package repository

import (
	"learnquest_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.DB.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) FindByJoinCode(code string) (*model.Class, error) {
	var class model.Class
	if err := r.DB.Where("join_code = ?", code).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) ListByTutor(tutorID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("tutor_id = ?", tutorID).Order("created_at desc").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) AddMember(membership *model.ClassMembership) error {
	return r.DB.Create(membership).Error
}

func (r *ClassRepository) IsMember(classID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ClassMembership{}).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClassRepository) ListStudents(classID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.
		Joins("JOIN class_memberships ON class_memberships.user_id = users.id").
		Where("class_memberships.class_id = ?", classID).
		Order("users.name asc").
		Find(&users).Error
	return users, err
}

func (r *ClassRepository) MemberIDs(classID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.ClassMembership{}).
		Where("class_id = ?", classID).
		Pluck("user_id", &ids).Error
	return ids, err
}
