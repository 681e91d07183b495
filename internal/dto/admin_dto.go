package dto

import "time"

// QuestionCreateDTO is used within ChapterCreateDTO for admin law creation.
type QuestionCreateDTO struct {
	Prompt         string `json:"prompt" binding:"required"`
	Rationale      string `json:"rationale"`
	RationaleBasis string `json:"rationale_basis"`
	Correct        *bool  `json:"correct" binding:"required"`
}

type ChapterCreateDTO struct {
	Name      string              `json:"name" binding:"required"`
	Questions []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type TitleCreateDTO struct {
	Name     string             `json:"name" binding:"required"`
	Chapters []ChapterCreateDTO `json:"chapters" binding:"omitempty,dive"`
}

// LawCreateDTO is for admin to create a law with its whole content tree.
type LawCreateDTO struct {
	SubjectID uint             `json:"subject_id" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Titles    []TitleCreateDTO `json:"titles" binding:"omitempty,dive"`
}

type SubjectCreateDTO struct {
	Name string `json:"name" binding:"required"`
}

type SubjectResponseDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type QuestionResponseDTO struct {
	ID             uint   `json:"id"`
	ChapterID      uint   `json:"chapter_id"`
	Prompt         string `json:"prompt"`
	Rationale      string `json:"rationale"`
	RationaleBasis string `json:"rationale_basis"`
	Correct        bool   `json:"correct"`
	Active         bool   `json:"active"`
}

type ChapterResponseDTO struct {
	ID        uint                  `json:"id"`
	Name      string                `json:"name"`
	Active    bool                  `json:"active"`
	Questions []QuestionResponseDTO `json:"questions,omitempty"`
}

type TitleResponseDTO struct {
	ID       uint                 `json:"id"`
	Name     string               `json:"name"`
	Active   bool                 `json:"active"`
	Chapters []ChapterResponseDTO `json:"chapters,omitempty"`
}

// LawResponseDTO is the admin view of a law and its content tree.
type LawResponseDTO struct {
	ID        uint               `json:"id"`
	SubjectID uint               `json:"subject_id"`
	Name      string             `json:"name"`
	Active    bool               `json:"active"`
	Titles    []TitleResponseDTO `json:"titles,omitempty"`
}

type SetActiveDTO struct {
	Active *bool `json:"active" binding:"required"`
}

// ErrorReportDTO is a stored learner report as admins review it.
type ErrorReportDTO struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     uint      `json:"user_id"`
	Message    string    `json:"message"`
	Notified   bool      `json:"notified"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotifyEmailDTO struct {
	NotifyEmail *string `json:"notify_email" binding:"omitempty,email"`
}
