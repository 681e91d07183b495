package model

// All lists every model for AutoMigrate, parents before children.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Subject{},
		&Law{},
		&Title{},
		&Chapter{},
		&Question{},
		&QuizAttempt{},
		&QuizAttemptItem{},
		&ErrorReport{},
		&Setting{},
	}
}
