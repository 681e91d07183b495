package service

import (
	"math"
	"strings"

	"github.com/lshigami/juristudy/internal/model"
)

// ScoreAnswer grades one submitted answer against the question's flag.
// A blank answer counts as unanswered and wrong, and is reported as "".
func ScoreAnswer(submitted string, correct bool) (isCorrect bool, userAnswer string, answered bool) {
	if strings.TrimSpace(submitted) == "" {
		return false, model.AnswerNone, false
	}
	return (submitted == model.AnswerTrue) == correct, submitted, true
}

// Percentage is correct/total in percent, rounded to one decimal.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)*1000/float64(total)) / 10
}
