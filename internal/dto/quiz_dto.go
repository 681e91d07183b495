package dto

import "time"

// LawSummaryDTO is used for listing laws a user can study.
type LawSummaryDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	SubjectID     uint   `json:"subject_id"`
	SubjectName   string `json:"subject_name"`
	QuestionCount int    `json:"question_count"`
}

// AttemptStartedDTO points the client at the first item of a new attempt.
type AttemptStartedDTO struct {
	AttemptID   uint   `json:"attempt_id"`
	LawID       uint   `json:"law_id"`
	ItemCount   int    `json:"item_count"`
	FirstItemID uint   `json:"first_item_id"`
	RedirectTo  string `json:"redirect_to"`
}

// AttemptItemDTO is a single question shown while the attempt is running.
// The correct answer is deliberately absent.
type AttemptItemDTO struct {
	ID         uint   `json:"id"`
	AttemptID  uint   `json:"attempt_id"`
	QuestionID uint   `json:"question_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
	Position   int    `json:"position"`
	Total      int    `json:"total"`
	PrevItemID *uint  `json:"prev_item_id,omitempty"`
	NextItemID *uint  `json:"next_item_id,omitempty"`
	Status     string `json:"status"`
}

type AnswerResultDTO struct {
	ItemID     uint   `json:"item_id"`
	Answer     string `json:"answer"`
	NextItemID *uint  `json:"next_item_id,omitempty"`
}

// ScoredItemDTO is one line of the score report.
type ScoredItemDTO struct {
	ItemID         uint   `json:"item_id"`
	QuestionID     uint   `json:"question_id"`
	Prompt         string `json:"prompt"`
	Rationale      string `json:"rationale"`
	RationaleBasis string `json:"rationale_basis"`
	CorrectAnswer  string `json:"correct_answer"`
	UserAnswer     string `json:"user_answer"`
	Answered       bool   `json:"answered"`
	IsCorrect      bool   `json:"is_correct"`
}

// ScoreReportDTO is the scored view of an attempt, items in creation order.
type ScoreReportDTO struct {
	AttemptID  uint            `json:"attempt_id"`
	LawID      uint            `json:"law_id"`
	LawName    string          `json:"law_name"`
	Status     string          `json:"status"`
	Total      int             `json:"total"`
	Answered   int             `json:"answered"`
	Correct    int             `json:"correct"`
	Percentage float64         `json:"percentage"`
	Items      []ScoredItemDTO `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// ErrorReportResultDTO says whether the report reached the notify address.
type ErrorReportResultDTO struct {
	Notified bool `json:"notified"`
}

type SessionDTO struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
