package model

import "time"

// ErrorReport is a learner's complaint about a question's content.
type ErrorReport struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	Notified   bool      `json:"notified" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
