package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnquest_backend/internal/model"
	"learnquest_backend/internal/repository"
	"learnquest_backend/internal/util"
	"learnquest_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ProgressService struct {
	LevelRepo    *repository.LevelRepository
	ProgressRepo *repository.ProgressRepository
	Roadmap      *RoadmapService
	Activity     *ActivityService
	DB           *gorm.DB
}

func NewProgressService(
	levelRepo *repository.LevelRepository,
	progressRepo *repository.ProgressRepository,
	roadmap *RoadmapService,
	activity *ActivityService,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		LevelRepo:    levelRepo,
		ProgressRepo: progressRepo,
		Roadmap:      roadmap,
		Activity:     activity,
		DB:           db,
	}
}

// scoreAttempt applies one finalized attempt to a progress record. Stars and
// score never regress, Completed is sticky, CompletedAt is set on the first
// completion only. An attempt with zero answered questions is legitimate: it
// simply fails to mark completion.
func scoreAttempt(level *model.Level, progress *model.LevelProgress, totalAnswered, correctCount int) (model.AttemptResult, error) {
	var completedThis bool
	starsThis := 0
	scoreThis := 0

	switch level.Kind {
	case model.LevelKindLesson:
		starsThis = correctCount
		if starsThis > 3 {
			starsThis = 3
		}
		completedThis = correctCount >= 1
	case model.LevelKindQuiz:
		if totalAnswered > 0 {
			scoreThis = correctCount * 100 / totalAnswered
		}
		completedThis = scoreThis >= level.MinPassScore
	default:
		return model.AttemptResult{}, fmt.Errorf("unknown level kind %q", level.Kind)
	}

	progress.AttemptCount++
	if starsThis > progress.Stars {
		progress.Stars = starsThis
	}
	if scoreThis > progress.Score {
		progress.Score = scoreThis
	}
	if completedThis && !progress.Completed {
		progress.Completed = true
		now := time.Now()
		progress.CompletedAt = &now
	}

	return model.AttemptResult{
		Completed:    progress.Completed,
		Stars:        progress.Stars,
		Score:        progress.Score,
		AttemptCount: progress.AttemptCount,
	}, nil
}

func (s *ProgressService) loadAccessibleLevel(userID, levelID uint) (*model.Level, error) {
	level, err := s.LevelRepo.FindByID(levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}

	accessible, err := s.Roadmap.AccessibleSet(userID)
	if err != nil {
		return nil, err
	}
	if !accessible[levelID] {
		return nil, util.ErrLevelNotAccessible
	}
	return level, nil
}

// InitLevel opens a level for the learner: its questions (without solutions),
// the stored progress and any answers of an in-progress attempt.
func (s *ProgressService) InitLevel(userID, levelID uint) (*model.LevelSession, error) {
	level, err := s.loadAccessibleLevel(userID, levelID)
	if err != nil {
		return nil, err
	}

	questions, err := s.LevelRepo.GetQuestionsByLevel(levelID)
	if err != nil {
		return nil, err
	}

	session := &model.LevelSession{
		LevelID:   level.ID,
		Kind:      level.Kind,
		Questions: questions,
		Answers:   []model.AnswerState{},
	}

	progress, err := s.ProgressRepo.FindByUserAndLevel(userID, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session, nil
		}
		return nil, err
	}

	session.Completed = progress.Completed
	session.Stars = progress.Stars
	session.Score = progress.Score
	session.AttemptCount = progress.AttemptCount

	answers, err := s.ProgressRepo.ListPartialAnswers(progress.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		session.Answers = append(session.Answers, model.AnswerState{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
		})
	}
	session.InProgress = len(answers) > 0

	return session, nil
}

// SubmitAnswer validates and records one answer of an in-progress attempt.
// Correctness is recomputed against the stored solution, never trusted from
// the client. Each question may be answered once per attempt; the unique
// index on (progress, question) settles concurrent duplicates.
func (s *ProgressService) SubmitAnswer(ctx context.Context, userID, levelID, questionID uint, selectedOption int) (*model.AnswerResult, error) {
	if _, err := s.loadAccessibleLevel(userID, levelID); err != nil {
		return nil, err
	}

	solution, err := s.LevelRepo.FindSolutionByQuestion(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	if solution.LevelID != levelID {
		return nil, util.ErrQuestionNotInLevel
	}

	isCorrect := selectedOption == solution.CorrectOptionIndex

	var result model.AnswerResult
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.GetOrCreate(tx, userID, levelID)
		if err != nil {
			return err
		}

		answer := &model.PartialAnswer{
			ProgressID:     progress.ID,
			QuestionID:     questionID,
			SelectedOption: selectedOption,
			IsCorrect:      isCorrect,
			AnsweredAt:     time.Now(),
		}
		if err := s.ProgressRepo.CreatePartialAnswer(tx, answer); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return util.ErrDuplicateAnswer
			}
			return err
		}

		total, correct, err := s.ProgressRepo.CountPartialAnswers(tx, progress.ID)
		if err != nil {
			return err
		}
		result = model.AnswerResult{
			IsCorrect:     isCorrect,
			TotalAnswered: total,
			CorrectCount:  correct,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.AnswersSubmitted.Inc()
	s.Roadmap.InvalidateCache(ctx, userID)
	s.Activity.Record(userID, model.ActivityAnswerSubmit, &levelID, map[string]interface{}{
		"questionId": questionID,
		"isCorrect":  isCorrect,
	})

	return &result, nil
}

// CompleteLevel finalizes the learner's in-progress attempt: scores it,
// applies the monotonic update to the progress record and consumes the
// partial answers, all in one transaction.
func (s *ProgressService) CompleteLevel(ctx context.Context, userID, levelID uint) (*model.AttemptResult, error) {
	level, err := s.loadAccessibleLevel(userID, levelID)
	if err != nil {
		return nil, err
	}

	var result model.AttemptResult
	var newlyCompleted bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.GetOrCreate(tx, userID, levelID)
		if err != nil {
			return err
		}

		total, correct, err := s.ProgressRepo.CountPartialAnswers(tx, progress.ID)
		if err != nil {
			return err
		}

		wasCompleted := progress.Completed
		result, err = scoreAttempt(level, progress, total, correct)
		if err != nil {
			return err
		}
		newlyCompleted = result.Completed && !wasCompleted

		if err := s.ProgressRepo.Update(tx, progress); err != nil {
			return err
		}
		return s.ProgressRepo.DeletePartialAnswers(tx, progress.ID)
	})
	if err != nil {
		return nil, err
	}

	if newlyCompleted {
		monitoring.LevelsCompleted.Inc()
	}
	s.Roadmap.InvalidateCache(ctx, userID)
	s.Activity.Record(userID, model.ActivityLevelComplete, &levelID, map[string]interface{}{
		"completed": result.Completed,
		"stars":     result.Stars,
		"score":     result.Score,
	})

	return &result, nil
}
