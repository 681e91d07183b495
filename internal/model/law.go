package model

import (
	"time"

	"gorm.io/gorm"
)

// Subject is the root of the classification chain (Subject → Law → Title →
// Chapter → Question). A question is only studied when every link is active.
type Subject struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null;uniqueIndex"`
	Active    bool           `json:"active" gorm:"not null"`
	Laws      []Law          `json:"laws,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Law struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SubjectID uint           `json:"subject_id" gorm:"not null;index"`
	Subject   Subject        `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Name      string         `json:"name" gorm:"not null"`
	Active    bool           `json:"active" gorm:"not null"`
	Titles    []Title        `json:"titles,omitempty" gorm:"foreignKey:LawID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Title struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LawID     uint           `json:"law_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Active    bool           `json:"active" gorm:"not null"`
	Chapters  []Chapter      `json:"chapters,omitempty" gorm:"foreignKey:TitleID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Chapter struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	TitleID   uint           `json:"title_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Active    bool           `json:"active" gorm:"not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
