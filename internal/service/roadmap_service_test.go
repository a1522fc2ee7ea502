package service

import (
	"testing"

	"learnquest_backend/internal/model"
)

func lesson(id, topicID uint, order int) model.Level {
	return model.Level{
		BaseModel: model.BaseModel{ID: id},
		TopicID:   topicID,
		Order:     order,
		Kind:      model.LevelKindLesson,
	}
}

func quiz(id, topicID uint, order, minPass int) model.Level {
	return model.Level{
		BaseModel:    model.BaseModel{ID: id},
		TopicID:      topicID,
		Order:        order,
		Kind:         model.LevelKindQuiz,
		MinPassScore: minPass,
	}
}

func topic(id uint, order, starsRequired int) model.Topic {
	return model.Topic{
		BaseModel:     model.BaseModel{ID: id},
		Order:         order,
		StarsRequired: starsRequired,
	}
}

func progressRow(levelID uint, completed bool, stars, score int) model.LevelProgress {
	return model.LevelProgress{
		UserID:    1,
		LevelID:   levelID,
		Completed: completed,
		Stars:     stars,
		Score:     score,
	}
}

// three-topic chain used across the tests: two lessons and a quiz in topic 1,
// one lesson and a quiz in topic 2, one lesson in topic 3
var (
	chainTopics = []model.Topic{
		topic(1, 1, 0),
		topic(2, 2, 4),
		topic(3, 3, 2),
	}
	chainLevels = []model.Level{
		lesson(10, 1, 1),
		lesson(11, 1, 2),
		quiz(12, 1, 3, 70),
		lesson(20, 2, 1),
		quiz(21, 2, 2, 70),
		lesson(30, 3, 1),
	}
)

func TestResolveLevelStatesDefaults(t *testing.T) {
	states := resolveLevelStates(chainLevels, nil, nil)
	if len(states) != len(chainLevels) {
		t.Fatalf("got %d states, want %d", len(states), len(chainLevels))
	}
	for _, s := range states {
		if s.Completed || s.Stars != 0 || s.Score != 0 || s.AttemptCount != 0 || s.InProgress {
			t.Errorf("level %d: expected zero-value state, got %+v", s.LevelID, s)
		}
	}
}

func TestResolveLevelStatesOrdering(t *testing.T) {
	// feed levels out of order, expect (topic, order) ordering back
	shuffled := []model.Level{
		chainLevels[4], chainLevels[0], chainLevels[5],
		chainLevels[2], chainLevels[3], chainLevels[1],
	}
	states := resolveLevelStates(shuffled, nil, nil)

	want := []uint{10, 11, 12, 20, 21, 30}
	for i, id := range want {
		if states[i].LevelID != id {
			t.Fatalf("position %d: got level %d, want %d", i, states[i].LevelID, id)
		}
	}
}

func TestResolveLevelStatesMergesProgress(t *testing.T) {
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
		progressRow(11, false, 0, 0),
	}
	inProgress := map[uint]bool{11: true}

	states := resolveLevelStates(chainLevels, progresses, inProgress)

	if !states[0].Completed || states[0].Stars != 3 {
		t.Errorf("level 10: got completed=%v stars=%d, want completed 3 stars", states[0].Completed, states[0].Stars)
	}
	if states[1].Completed {
		t.Error("level 11 should not be completed")
	}
	if !states[1].InProgress {
		t.Error("level 11 should be in progress")
	}
	if states[2].InProgress {
		t.Error("level 12 should not be in progress")
	}
}

func TestAggregateTopicsFirstAlwaysUnlocked(t *testing.T) {
	states := resolveLevelStates(chainLevels, nil, nil)
	topics := aggregateTopics(chainTopics, states)

	if !topics[0].Unlocked {
		t.Error("first topic must be unlocked for a fresh learner")
	}
	if topics[1].Unlocked || topics[2].Unlocked {
		t.Error("later topics must stay locked for a fresh learner")
	}
}

func TestAggregateTopicsUnlockChain(t *testing.T) {
	tests := []struct {
		name       string
		progresses []model.LevelProgress
		unlocked   []bool
	}{
		{
			name: "all levels done but too few stars keeps topic 2 locked",
			progresses: []model.LevelProgress{
				progressRow(10, true, 2, 0),
				progressRow(11, true, 1, 0),
				progressRow(12, true, 0, 80),
			},
			unlocked: []bool{true, false, false},
		},
		{
			name: "enough stars but an incomplete level keeps topic 2 locked",
			progresses: []model.LevelProgress{
				progressRow(10, true, 3, 0),
				progressRow(11, true, 3, 0),
			},
			unlocked: []bool{true, false, false},
		},
		{
			name: "full completion with enough stars unlocks topic 2 only",
			progresses: []model.LevelProgress{
				progressRow(10, true, 3, 0),
				progressRow(11, true, 2, 0),
				progressRow(12, true, 0, 80),
			},
			unlocked: []bool{true, true, false},
		},
		{
			name: "whole chain done unlocks topic 3",
			progresses: []model.LevelProgress{
				progressRow(10, true, 3, 0),
				progressRow(11, true, 2, 0),
				progressRow(12, true, 0, 80),
				progressRow(20, true, 3, 0),
				progressRow(21, true, 0, 90),
			},
			unlocked: []bool{true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := resolveLevelStates(chainLevels, tt.progresses, nil)
			topics := aggregateTopics(chainTopics, states)
			for i, want := range tt.unlocked {
				if topics[i].Unlocked != want {
					t.Errorf("topic %d: unlocked=%v, want %v", topics[i].TopicID, topics[i].Unlocked, want)
				}
			}
		})
	}
}

func TestAggregateTopicsStarTotals(t *testing.T) {
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
		progressRow(11, true, 1, 0),
		progressRow(12, true, 0, 80),
	}
	states := resolveLevelStates(chainLevels, progresses, nil)
	topics := aggregateTopics(chainTopics, states)

	// only the two lessons feed the stars pool, the quiz contributes nothing
	if topics[0].StarsEarned != 4 {
		t.Errorf("topic 1 stars earned = %d, want 4", topics[0].StarsEarned)
	}
	if topics[0].StarsPossible != 6 {
		t.Errorf("topic 1 stars possible = %d, want 6", topics[0].StarsPossible)
	}
	if topics[0].CompletedLevels != 3 || topics[0].TotalLevels != 3 {
		t.Errorf("topic 1 completion = %d/%d, want 3/3", topics[0].CompletedLevels, topics[0].TotalLevels)
	}
}

func TestResolveAccessFreshLearner(t *testing.T) {
	states := resolveLevelStates(chainLevels, nil, nil)
	topics := aggregateTopics(chainTopics, states)
	current, accessible := resolveAccess(states, topics)

	if current == nil || *current != 10 {
		t.Fatalf("current = %v, want level 10", current)
	}
	if !accessible[10] {
		t.Error("level 10 must be accessible")
	}
	for _, id := range []uint{11, 12, 20, 21, 30} {
		if accessible[id] {
			t.Errorf("level %d must not be accessible yet", id)
		}
	}
}

func TestResolveAccessSequential(t *testing.T) {
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
	}
	states := resolveLevelStates(chainLevels, progresses, nil)
	topics := aggregateTopics(chainTopics, states)
	current, accessible := resolveAccess(states, topics)

	if current == nil || *current != 11 {
		t.Fatalf("current = %v, want level 11", current)
	}
	if !accessible[10] {
		t.Error("completed level 10 must stay accessible for replay")
	}
	if !accessible[11] {
		t.Error("level 11 must be accessible as the current level")
	}
	if accessible[12] {
		t.Error("level 12 beyond the current one must stay locked")
	}
}

func TestResolveAccessCrossesTopicBoundary(t *testing.T) {
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
		progressRow(11, true, 2, 0),
		progressRow(12, true, 0, 80),
	}
	states := resolveLevelStates(chainLevels, progresses, nil)
	topics := aggregateTopics(chainTopics, states)
	current, accessible := resolveAccess(states, topics)

	if current == nil || *current != 20 {
		t.Fatalf("current = %v, want level 20 in the next topic", current)
	}
	if accessible[30] {
		t.Error("levels of still-locked topics must not be accessible")
	}
}

func TestResolveAccessEverythingCompleted(t *testing.T) {
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
		progressRow(11, true, 3, 0),
		progressRow(12, true, 0, 100),
		progressRow(20, true, 3, 0),
		progressRow(21, true, 0, 100),
		progressRow(30, true, 3, 0),
	}
	states := resolveLevelStates(chainLevels, progresses, nil)
	topics := aggregateTopics(chainTopics, states)
	current, accessible := resolveAccess(states, topics)

	if current != nil {
		t.Errorf("current = %d, want none when everything is completed", *current)
	}
	for _, id := range []uint{10, 11, 12, 20, 21, 30} {
		if !accessible[id] {
			t.Errorf("completed level %d must stay accessible", id)
		}
	}
}

func TestResolveMinigames(t *testing.T) {
	games := []model.Minigame{
		{BaseModel: model.BaseModel{ID: 1}, Slug: "number-race", RequiredLevelID: 10},
		{BaseModel: model.BaseModel{ID: 2}, Slug: "sum-sprint", RequiredLevelID: 20},
	}
	progresses := []model.LevelProgress{
		progressRow(10, true, 3, 0),
	}
	states := resolveLevelStates(chainLevels, progresses, nil)

	out := resolveMinigames(games, states)
	if !out[0].Unlocked {
		t.Error("minigame gated on a completed level must be unlocked")
	}
	if out[1].Unlocked {
		t.Error("minigame gated on an untouched level must stay locked")
	}
}
