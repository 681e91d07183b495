package model

import "time"

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusFinished   = "finished"
)

// Stored answers. An unanswered item keeps AnswerNone.
const (
	AnswerNone  = ""
	AnswerTrue  = "true"
	AnswerFalse = "false"
)

// QuizAttempt is one sitting of a user at a sample of a Law's questions.
// The partial unique index keeps a single in-progress attempt per user.
// Attempts are hard-deleted, so the model has no DeletedAt.
type QuizAttempt struct {
	ID         uint              `gorm:"primarykey" json:"id"`
	UserID     uint              `json:"user_id" gorm:"not null;index;uniqueIndex:idx_quiz_attempts_user_in_progress,where:status = 'in_progress'"`
	LawID      uint              `json:"law_id" gorm:"not null;index"`
	Law        Law               `json:"law,omitempty" gorm:"foreignKey:LawID"`
	Status     string            `json:"status" gorm:"not null;default:'in_progress'"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
	Items      []QuizAttemptItem `json:"items,omitempty" gorm:"foreignKey:QuizAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (a QuizAttempt) InProgress() bool {
	return a.Status == AttemptStatusInProgress
}

// QuizAttemptItem binds one question to an attempt and holds the user's answer.
type QuizAttemptItem struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	QuizAttemptID uint       `json:"quiz_attempt_id" gorm:"not null;index"`
	QuestionID    uint       `json:"question_id" gorm:"not null;index"`
	Question      Question   `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer        string     `json:"answer" gorm:"type:varchar(5);not null;default:''"`
	AnsweredAt    *time.Time `json:"answered_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
