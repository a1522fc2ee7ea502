package service

import (
	"encoding/json"
	"errors"

	"learnquest_backend/internal/model"
	"learnquest_backend/internal/repository"
	"learnquest_backend/internal/util"
	"learnquest_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	ClassRepo    *repository.ClassRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository, classRepo *repository.ClassRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		ClassRepo:    classRepo,
	}
}

// Record writes an activity entry best-effort: a failed write is logged and
// never fails the operation that produced it.
func (s *ActivityService) Record(userID uint, action string, levelID *uint, detail map[string]interface{}) {
	entry := &model.ActivityLog{
		UserID:  userID,
		Action:  action,
		LevelID: levelID,
	}
	if detail != nil {
		if payload, err := json.Marshal(detail); err == nil {
			entry.Detail = string(payload)
		}
	}
	if err := s.ActivityRepo.Create(entry); err != nil {
		logger.Log.Warn("activity log write failed",
			zap.Uint("userId", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}

// ListClassActivity returns recent entries for the students of a class; only
// the owning tutor may read them.
func (s *ActivityService) ListClassActivity(tutorID, classID uint, limit int) ([]model.ActivityLog, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	if class.TutorID != tutorID {
		return nil, util.ErrNotClassTutor
	}

	memberIDs, err := s.ClassRepo.MemberIDs(classID)
	if err != nil {
		return nil, err
	}
	return s.ActivityRepo.ListByUsers(memberIDs, limit)
}
