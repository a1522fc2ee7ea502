package model

// View types composed by the roadmap and progress services. They are derived
// per learner from the static curriculum plus that learner's progress rows and
// never persisted.

// LevelState merges one level definition with a learner's progress on it.
type LevelState struct {
	LevelID      uint      `json:"levelId"`
	TopicID      uint      `json:"topicId"`
	Order        int       `json:"order"`
	Title        string    `json:"title"`
	Kind         LevelKind `json:"kind"`
	MinPassScore int       `json:"minPassScore"`
	Completed    bool      `json:"completed"`
	Stars        int       `json:"stars"`
	Score        int       `json:"score"`
	AttemptCount int       `json:"attemptCount"`
	InProgress   bool      `json:"inProgress"`
	Accessible   bool      `json:"accessible"`
}

// TopicState carries per-topic totals and the derived unlock status.
type TopicState struct {
	TopicID         uint   `json:"topicId"`
	Title           string `json:"title"`
	Order           int    `json:"order"`
	TotalLevels     int    `json:"totalLevels"`
	CompletedLevels int    `json:"completedLevels"`
	StarsEarned     int    `json:"starsEarned"`
	StarsPossible   int    `json:"starsPossible"`
	StarsRequired   int    `json:"starsRequired"`
	Unlocked        bool   `json:"unlocked"`
}

// MinigameState is a catalog entry with the learner's unlock status.
type MinigameState struct {
	MinigameID      uint   `json:"minigameId"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	RequiredLevelID uint   `json:"requiredLevelId"`
	Unlocked        bool   `json:"unlocked"`
}

// Roadmap is the full payload the client renders.
type Roadmap struct {
	CurrentLevel *uint           `json:"currentLevel"`
	Levels       []LevelState    `json:"levels"`
	Topics       []TopicState    `json:"topics"`
	Minigames    []MinigameState `json:"minigames"`
}

// AnswerResult is returned after recording one answer.
type AnswerResult struct {
	IsCorrect     bool `json:"isCorrect"`
	TotalAnswered int  `json:"totalAnswered"`
	CorrectCount  int  `json:"correctCount"`
}

// AttemptResult is returned after finalizing an attempt.
type AttemptResult struct {
	Completed    bool `json:"completed"`
	Stars        int  `json:"stars"`
	Score        int  `json:"score"`
	AttemptCount int  `json:"attemptCount"`
}

// AnswerState describes one already-answered question of the current attempt.
type AnswerState struct {
	QuestionID     uint `json:"questionId"`
	SelectedOption int  `json:"selectedOption"`
	IsCorrect      bool `json:"isCorrect"`
}

// LevelSession is the payload for opening a level.
type LevelSession struct {
	LevelID      uint          `json:"levelId"`
	Kind         LevelKind     `json:"kind"`
	Completed    bool          `json:"completed"`
	Stars        int           `json:"stars"`
	Score        int           `json:"score"`
	AttemptCount int           `json:"attemptCount"`
	InProgress   bool          `json:"inProgress"`
	Questions    []Question    `json:"questions"`
	Answers      []AnswerState `json:"answers"`
}

// StudentProgressSummary is the per-student row of a tutor's class view.
type StudentProgressSummary struct {
	UserID          uint   `json:"userId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	StarsEarned     int    `json:"starsEarned"`
	StarsPossible   int    `json:"starsPossible"`
	CompletedLevels int    `json:"completedLevels"`
	TotalLevels     int    `json:"totalLevels"`
	CurrentLevel    *uint  `json:"currentLevel"`
}
