package dto

// StartAttemptRequest starts a quiz over the questions of one law.
type StartAttemptRequest struct {
	LawID uint `json:"law_id" binding:"required"`
}

// AnswerItemRequest carries a true/false answer for one attempt item.
type AnswerItemRequest struct {
	Answer string `json:"answer" binding:"required,oneof=true false"`
}

// ErrorReportRequest is a learner's report about a wrong or unclear question.
type ErrorReportRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

type SessionCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
