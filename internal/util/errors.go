package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")

	ErrLevelNotFound      = errors.New("level not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrLevelNotAccessible = errors.New("level not accessible")
	ErrQuestionNotInLevel = errors.New("question does not belong to level")
	ErrDuplicateAnswer    = errors.New("question already answered in current attempt")

	ErrClassNotFound   = errors.New("class not found")
	ErrInvalidJoinCode = errors.New("invalid join code")
	ErrAlreadyInClass  = errors.New("already a member of this class")
	ErrNotClassTutor   = errors.New("not the tutor of this class")
)
