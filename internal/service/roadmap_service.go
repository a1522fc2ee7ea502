package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"learnquest_backend/internal/model"
	"learnquest_backend/internal/repository"
	"learnquest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	roadmapCacheTTL       = 5 * time.Minute
	roadmapCacheKeyPrefix = "roadmap:"
)

type RoadmapService struct {
	TopicRepo    *repository.TopicRepository
	LevelRepo    *repository.LevelRepository
	ProgressRepo *repository.ProgressRepository
	MinigameRepo *repository.MinigameRepository
	Redis        *redis.Client
}

func NewRoadmapService(
	topicRepo *repository.TopicRepository,
	levelRepo *repository.LevelRepository,
	progressRepo *repository.ProgressRepository,
	minigameRepo *repository.MinigameRepository,
	rdb *redis.Client,
) *RoadmapService {
	return &RoadmapService{
		TopicRepo:    topicRepo,
		LevelRepo:    levelRepo,
		ProgressRepo: progressRepo,
		MinigameRepo: minigameRepo,
		Redis:        rdb,
	}
}

// resolveLevelStates merges the static level definitions with one learner's
// progress rows into per-level state records, ordered by (topic id, level
// order). Every defined level appears exactly once; levels the learner never
// touched get zero-value defaults.
func resolveLevelStates(levels []model.Level, progresses []model.LevelProgress, inProgress map[uint]bool) []model.LevelState {
	byLevel := make(map[uint]model.LevelProgress, len(progresses))
	for _, p := range progresses {
		byLevel[p.LevelID] = p
	}

	states := make([]model.LevelState, 0, len(levels))
	for _, lvl := range levels {
		state := model.LevelState{
			LevelID:      lvl.ID,
			TopicID:      lvl.TopicID,
			Order:        lvl.Order,
			Title:        lvl.Title,
			Kind:         lvl.Kind,
			MinPassScore: lvl.MinPassScore,
			InProgress:   inProgress[lvl.ID],
		}
		if p, ok := byLevel[lvl.ID]; ok {
			state.Completed = p.Completed
			state.Stars = p.Stars
			state.Score = p.Score
			state.AttemptCount = p.AttemptCount
		}
		states = append(states, state)
	}

	sort.SliceStable(states, func(i, j int) bool {
		if states[i].TopicID != states[j].TopicID {
			return states[i].TopicID < states[j].TopicID
		}
		return states[i].Order < states[j].Order
	})
	return states
}

// aggregateTopics folds the level states into per-topic totals and derives
// each topic's unlock status in one forward pass over the unlock chain. The
// first topic is always unlocked; every later topic requires the previous
// topic to be fully completed and its earned stars to meet the unlocking
// topic's threshold. Only lesson levels feed the stars pool.
func aggregateTopics(topics []model.Topic, states []model.LevelState) []model.TopicState {
	byTopic := make(map[uint][]model.LevelState, len(topics))
	for _, s := range states {
		byTopic[s.TopicID] = append(byTopic[s.TopicID], s)
	}

	out := make([]model.TopicState, 0, len(topics))
	for i, t := range topics {
		ts := model.TopicState{
			TopicID:       t.ID,
			Title:         t.Title,
			Order:         t.Order,
			StarsRequired: t.StarsRequired,
		}
		for _, s := range byTopic[t.ID] {
			ts.TotalLevels++
			if s.Completed {
				ts.CompletedLevels++
			}
			if s.Kind == model.LevelKindLesson {
				ts.StarsPossible += 3
				ts.StarsEarned += s.Stars
			}
		}
		if i == 0 {
			ts.Unlocked = true
		} else {
			prev := out[i-1]
			ts.Unlocked = prev.CompletedLevels == prev.TotalLevels &&
				prev.StarsEarned >= ts.StarsRequired
		}
		out = append(out, ts)
	}
	return out
}

// resolveAccess derives the single current level (first incomplete level in an
// unlocked topic) and the set of levels the learner may open: everything
// already completed plus the current level. Levels inside an unlocked topic
// beyond the current one stay inaccessible until taken in order.
func resolveAccess(states []model.LevelState, topics []model.TopicState) (*uint, map[uint]bool) {
	unlocked := make(map[uint]bool, len(topics))
	for _, t := range topics {
		unlocked[t.TopicID] = t.Unlocked
	}

	var current *uint
	accessible := make(map[uint]bool)
	for _, s := range states {
		if s.Completed {
			accessible[s.LevelID] = true
			continue
		}
		if current == nil && unlocked[s.TopicID] {
			id := s.LevelID
			current = &id
			accessible[id] = true
		}
	}
	return current, accessible
}

// resolveMinigames marks each catalog entry unlocked when its prerequisite
// level is in the learner's completed set.
func resolveMinigames(games []model.Minigame, states []model.LevelState) []model.MinigameState {
	completed := make(map[uint]bool, len(states))
	for _, s := range states {
		if s.Completed {
			completed[s.LevelID] = true
		}
	}

	out := make([]model.MinigameState, 0, len(games))
	for _, g := range games {
		out = append(out, model.MinigameState{
			MinigameID:      g.ID,
			Title:           g.Title,
			Slug:            g.Slug,
			RequiredLevelID: g.RequiredLevelID,
			Unlocked:        completed[g.RequiredLevelID],
		})
	}
	return out
}

// resolveForUser runs the full derivation pipeline for one learner from fresh
// storage reads.
func (s *RoadmapService) resolveForUser(userID uint) ([]model.LevelState, []model.TopicState, *uint, map[uint]bool, error) {
	topics, err := s.TopicRepo.ListOrdered()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	levels, err := s.LevelRepo.ListOrdered()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	progresses, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	inProgress, err := s.ProgressRepo.InProgressLevelIDs(userID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	states := resolveLevelStates(levels, progresses, inProgress)
	topicStates := aggregateTopics(topics, states)
	current, accessible := resolveAccess(states, topicStates)
	return states, topicStates, current, accessible, nil
}

// AccessibleSet returns the ids of the levels the learner may currently open.
// Always computed fresh: access decisions must not run against a stale cache.
func (s *RoadmapService) AccessibleSet(userID uint) (map[uint]bool, error) {
	_, _, _, accessible, err := s.resolveForUser(userID)
	return accessible, err
}

// BuildRoadmap composes the full client payload, serving a cached copy when
// one exists.
func (s *RoadmapService) BuildRoadmap(ctx context.Context, userID uint) (*model.Roadmap, error) {
	key := roadmapCacheKeyPrefix + fmt.Sprint(userID)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var cached model.Roadmap
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		}
	}

	states, topicStates, current, accessible, err := s.resolveForUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range states {
		states[i].Accessible = accessible[states[i].LevelID]
	}

	games, err := s.MinigameRepo.ListAll()
	if err != nil {
		return nil, err
	}

	roadmap := &model.Roadmap{
		CurrentLevel: current,
		Levels:       states,
		Topics:       topicStates,
		Minigames:    resolveMinigames(games, states),
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(roadmap); err == nil {
			if err := s.Redis.Set(ctx, key, payload, roadmapCacheTTL).Err(); err != nil {
				logger.Log.Warn("roadmap cache write failed", zap.Uint("userId", userID), zap.Error(err))
			}
		}
	}
	return roadmap, nil
}

// InvalidateCache drops the cached roadmap after any progress mutation.
func (s *RoadmapService) InvalidateCache(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	key := roadmapCacheKeyPrefix + fmt.Sprint(userID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("roadmap cache invalidation failed", zap.Uint("userId", userID), zap.Error(err))
	}
}

// LearnerSummary condenses a learner's roadmap into the totals shown on tutor
// dashboards.
func (s *RoadmapService) LearnerSummary(userID uint) (*model.StudentProgressSummary, error) {
	states, topicStates, current, _, err := s.resolveForUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &model.StudentProgressSummary{
		UserID:       userID,
		TotalLevels:  len(states),
		CurrentLevel: current,
	}
	for _, s := range states {
		if s.Completed {
			summary.CompletedLevels++
		}
	}
	for _, t := range topicStates {
		summary.StarsEarned += t.StarsEarned
		summary.StarsPossible += t.StarsPossible
	}
	return summary, nil
}
