package database

import (
	"fmt"
	"log"

	"learnquest_backend/internal/config"
	"learnquest_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// duplicate-key violations must surface as gorm.ErrDuplicatedKey so
		// the answer recorder can tell a lost race from a real failure
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Level{},
		&model.Question{},
		&model.Solution{},
		&model.LevelProgress{},
		&model.PartialAnswer{},
		&model.Minigame{},
		&model.Class{},
		&model.ClassMembership{},
		&model.ActivityLog{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedCurriculum(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedCurriculum inserts a small demo curriculum when the topic table is
// empty, so a fresh install has something to render.
func seedCurriculum(db *gorm.DB) error {
	var topicCount int64
	if err := db.Model(&model.Topic{}).Count(&topicCount).Error; err != nil {
		return err
	}
	if topicCount > 0 {
		return nil
	}

	type seedQuestion struct {
		prompt  string
		options string
		correct int
	}
	type seedLevel struct {
		title        string
		kind         model.LevelKind
		minPassScore int
		questions    []seedQuestion
	}
	type seedTopic struct {
		title         string
		starsRequired int
		levels        []seedLevel
	}

	topics := []seedTopic{
		{
			title:         "Numbers",
			starsRequired: 0,
			levels: []seedLevel{
				{title: "Counting", kind: model.LevelKindLesson, questions: []seedQuestion{
					{prompt: "How many apples are shown?", options: `["2","3","4"]`, correct: 1},
					{prompt: "Which number comes after 7?", options: `["6","8","9"]`, correct: 1},
					{prompt: "Which group has the most stars?", options: `["left","middle","right"]`, correct: 2},
				}},
				{title: "Comparing", kind: model.LevelKindLesson, questions: []seedQuestion{
					{prompt: "Which is bigger?", options: `["12","21"]`, correct: 1},
					{prompt: "Which is smaller?", options: `["5","3","9"]`, correct: 1},
					{prompt: "Order 4, 2, 8 from small to large", options: `["2,4,8","8,4,2","4,2,8"]`, correct: 0},
				}},
				{title: "Numbers check", kind: model.LevelKindQuiz, minPassScore: 70, questions: []seedQuestion{
					{prompt: "What is 3 + 4?", options: `["6","7","8"]`, correct: 1},
					{prompt: "What is 9 - 5?", options: `["4","5","3"]`, correct: 0},
					{prompt: "Which number is even?", options: `["3","7","6"]`, correct: 2},
					{prompt: "What comes before 10?", options: `["9","11","8"]`, correct: 0},
				}},
			},
		},
		{
			title:         "Addition",
			starsRequired: 4,
			levels: []seedLevel{
				{title: "Adding small numbers", kind: model.LevelKindLesson, questions: []seedQuestion{
					{prompt: "2 + 2 = ?", options: `["3","4","5"]`, correct: 1},
					{prompt: "5 + 3 = ?", options: `["7","8","9"]`, correct: 1},
					{prompt: "6 + 1 = ?", options: `["7","6","8"]`, correct: 0},
				}},
				{title: "Addition check", kind: model.LevelKindQuiz, minPassScore: 70, questions: []seedQuestion{
					{prompt: "8 + 7 = ?", options: `["14","15","16"]`, correct: 1},
					{prompt: "12 + 9 = ?", options: `["21","20","22"]`, correct: 0},
					{prompt: "6 + 6 = ?", options: `["11","12","13"]`, correct: 1},
					{prompt: "14 + 5 = ?", options: `["18","19","20"]`, correct: 1},
				}},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var firstLessonID uint
		for ti, st := range topics {
			topic := model.Topic{Title: st.title, Order: ti + 1, StarsRequired: st.starsRequired}
			if err := tx.Create(&topic).Error; err != nil {
				return err
			}
			for li, sl := range st.levels {
				level := model.Level{
					TopicID:      topic.ID,
					Title:        sl.title,
					Order:        li + 1,
					Kind:         sl.kind,
					MinPassScore: sl.minPassScore,
				}
				if err := tx.Create(&level).Error; err != nil {
					return err
				}
				if firstLessonID == 0 && sl.kind == model.LevelKindLesson {
					firstLessonID = level.ID
				}
				for qi, sq := range sl.questions {
					question := model.Question{
						LevelID: level.ID,
						Order:   qi + 1,
						Prompt:  sq.prompt,
						Options: sq.options,
					}
					if err := tx.Create(&question).Error; err != nil {
						return err
					}
					solution := model.Solution{
						QuestionID:         question.ID,
						LevelID:            level.ID,
						CorrectOptionIndex: sq.correct,
					}
					if err := tx.Create(&solution).Error; err != nil {
						return err
					}
				}
			}
		}

		game := model.Minigame{
			Title:           "Number Race",
			Slug:            "number-race",
			Description:     "Race the clock solving counting puzzles.",
			RequiredLevelID: firstLessonID,
		}
		return tx.Create(&game).Error
	})
}
