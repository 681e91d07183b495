package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAttemptFinished = errors.New("attempt already finished")
	ErrInvalidAnswer   = errors.New("answer must be \"true\" or \"false\"")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("invalid credentials")
)

// NoEligibleQuestionsError means a law has nothing to study right now. It is
// an expected outcome, not a failure: the caller shows Message and moves on.
type NoEligibleQuestionsError struct {
	LawID   uint
	LawName string
}

func (e *NoEligibleQuestionsError) Error() string {
	return fmt.Sprintf("law %d has no eligible questions", e.LawID)
}

// Message is the user facing text.
func (e *NoEligibleQuestionsError) Message() string {
	return fmt.Sprintf("There are no active questions for %s yet.", e.LawName)
}
