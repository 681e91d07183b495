package model

import "time"

// SettingID is the primary key of the single settings row.
const SettingID uint = 1

type Setting struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	NotifyEmail *string   `json:"notify_email"`
	UpdatedAt   time.Time `json:"updated_at"`
}
