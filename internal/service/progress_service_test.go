package service

import (
	"testing"

	"learnquest_backend/internal/model"
)

func TestScoreAttemptLesson(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindLesson}

	tests := []struct {
		name          string
		correct       int
		total         int
		wantStars     int
		wantCompleted bool
	}{
		{"no answers", 0, 0, 0, false},
		{"all wrong", 0, 3, 0, false},
		{"one correct", 1, 3, 1, true},
		{"three correct", 3, 3, 3, true},
		{"stars cap at three", 5, 5, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &model.LevelProgress{}
			result, err := scoreAttempt(level, progress, tt.total, tt.correct)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Stars != tt.wantStars {
				t.Errorf("stars = %d, want %d", result.Stars, tt.wantStars)
			}
			if result.Completed != tt.wantCompleted {
				t.Errorf("completed = %v, want %v", result.Completed, tt.wantCompleted)
			}
			if result.AttemptCount != 1 {
				t.Errorf("attempt count = %d, want 1", result.AttemptCount)
			}
		})
	}
}

func TestScoreAttemptQuiz(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindQuiz, MinPassScore: 70}

	tests := []struct {
		name          string
		correct       int
		total         int
		wantScore     int
		wantCompleted bool
	}{
		{"no answers scores zero", 0, 0, 0, false},
		{"half right fails", 2, 4, 50, false},
		{"three of four passes", 3, 4, 75, true},
		{"exact threshold passes", 7, 10, 70, true},
		{"perfect run", 4, 4, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := &model.LevelProgress{}
			result, err := scoreAttempt(level, progress, tt.total, tt.correct)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.Completed != tt.wantCompleted {
				t.Errorf("completed = %v, want %v", result.Completed, tt.wantCompleted)
			}
		})
	}
}

func TestScoreAttemptStarsNeverRegress(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindLesson}
	progress := &model.LevelProgress{}

	if _, err := scoreAttempt(level, progress, 3, 3); err != nil {
		t.Fatal(err)
	}
	result, err := scoreAttempt(level, progress, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	if result.Stars != 3 {
		t.Errorf("stars regressed to %d after a weaker attempt, want 3", result.Stars)
	}
	if result.AttemptCount != 2 {
		t.Errorf("attempt count = %d, want 2", result.AttemptCount)
	}
}

func TestScoreAttemptScoreNeverRegresses(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindQuiz, MinPassScore: 70}
	progress := &model.LevelProgress{}

	if _, err := scoreAttempt(level, progress, 4, 3); err != nil {
		t.Fatal(err)
	}
	result, err := scoreAttempt(level, progress, 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	if result.Score != 75 {
		t.Errorf("score regressed to %d after a weaker attempt, want 75", result.Score)
	}
	if !result.Completed {
		t.Error("completion must be sticky across weaker attempts")
	}
}

func TestScoreAttemptCompletedAtSetOnce(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindQuiz, MinPassScore: 70}
	progress := &model.LevelProgress{}

	if _, err := scoreAttempt(level, progress, 4, 3); err != nil {
		t.Fatal(err)
	}
	if progress.CompletedAt == nil {
		t.Fatal("CompletedAt must be set on first completion")
	}
	first := *progress.CompletedAt

	if _, err := scoreAttempt(level, progress, 4, 4); err != nil {
		t.Fatal(err)
	}
	if !progress.CompletedAt.Equal(first) {
		t.Error("CompletedAt must not move on later attempts")
	}
}

func TestScoreAttemptFailedAttemptStillCounts(t *testing.T) {
	level := &model.Level{Kind: model.LevelKindQuiz, MinPassScore: 70}
	progress := &model.LevelProgress{}

	result, err := scoreAttempt(level, progress, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Completed {
		t.Error("an empty attempt must not complete the level")
	}
	if result.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1 even for an empty attempt", result.AttemptCount)
	}
	if progress.CompletedAt != nil {
		t.Error("CompletedAt must stay unset on a failed attempt")
	}
}

func TestScoreAttemptUnknownKind(t *testing.T) {
	level := &model.Level{Kind: model.LevelKind("puzzle")}
	progress := &model.LevelProgress{}

	if _, err := scoreAttempt(level, progress, 1, 1); err == nil {
		t.Fatal("expected an error for an unknown level kind")
	}
	if progress.AttemptCount != 0 {
		t.Error("a rejected attempt must not touch the progress record")
	}
}
