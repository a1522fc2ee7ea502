package service

import (
	"errors"
	"strings"

	"learnquest_backend/internal/model"
	"learnquest_backend/internal/repository"
	"learnquest_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassService struct {
	ClassRepo *repository.ClassRepository
	UserRepo  *repository.UserRepository
	Roadmap   *RoadmapService
	Activity  *ActivityService
}

func NewClassService(
	classRepo *repository.ClassRepository,
	userRepo *repository.UserRepository,
	roadmap *RoadmapService,
	activity *ActivityService,
) *ClassService {
	return &ClassService{
		ClassRepo: classRepo,
		UserRepo:  userRepo,
		Roadmap:   roadmap,
		Activity:  activity,
	}
}

func newJoinCode() string {
	return strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
}

func (s *ClassService) CreateClass(tutorID uint, name string) (*model.Class, error) {
	class := &model.Class{
		Name:     name,
		TutorID:  tutorID,
		JoinCode: newJoinCode(),
	}
	if err := s.ClassRepo.Create(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) ListClasses(tutorID uint) ([]model.Class, error) {
	return s.ClassRepo.ListByTutor(tutorID)
}

func (s *ClassService) JoinClass(userID uint, joinCode string) (*model.Class, error) {
	class, err := s.ClassRepo.FindByJoinCode(strings.ToUpper(strings.TrimSpace(joinCode)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidJoinCode
		}
		return nil, err
	}

	member, err := s.ClassRepo.IsMember(class.ID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, util.ErrAlreadyInClass
	}

	if err := s.ClassRepo.AddMember(&model.ClassMembership{ClassID: class.ID, UserID: userID}); err != nil {
		return nil, err
	}

	s.Activity.Record(userID, model.ActivityClassJoin, nil, map[string]interface{}{
		"classId": class.ID,
	})
	return class, nil
}

// ClassStudents returns the owning tutor's per-student progress summaries,
// derived through the same aggregation pipeline the roadmap uses.
func (s *ClassService) ClassStudents(tutorID, classID uint) ([]model.StudentProgressSummary, error) {
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

	students, err := s.ClassRepo.ListStudents(classID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.StudentProgressSummary, 0, len(students))
	for _, student := range students {
		summary, err := s.Roadmap.LearnerSummary(student.ID)
		if err != nil {
			return nil, err
		}
		summary.Name = student.Name
		summary.Email = student.Email
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}
