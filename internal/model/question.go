package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is a true/false statement about a Chapter of a Law.
type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ChapterID      uint           `json:"chapter_id" gorm:"not null;index"`
	Chapter        Chapter        `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	Prompt         string         `json:"prompt" gorm:"type:text;not null"`
	Rationale      string         `json:"rationale" gorm:"type:text"`
	RationaleBasis string         `json:"rationale_basis" gorm:"type:text"`
	Correct        bool           `json:"correct" gorm:"not null"`
	Active         bool           `json:"active" gorm:"not null;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CorrectAnswer renders the correct flag the way answers are stored.
func (q Question) CorrectAnswer() string {
	if q.Correct {
		return AnswerTrue
	}
	return AnswerFalse
}
