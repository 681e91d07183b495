package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/mailer"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NotifyEmailReader yields the address that receives error reports, or nil
// when notifications are switched off.
type NotifyEmailReader interface {
	NotifyEmail(ctx context.Context) (*string, error)
}

type ErrorReportService interface {
	// NotifyErrorQuiz stores the report and emails it to the notify address.
	// It reports whether the email went out; delivery problems are not errors.
	NotifyErrorQuiz(ctx context.Context, questionID, userID uint, message string) (bool, error)
	// ListReports returns the reports filed against a question, newest first.
	ListReports(ctx context.Context, questionID uint) ([]dto.ErrorReportDTO, error)
}

type errorReportService struct {
	reportRepo   repository.ErrorReportRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
	settings     NotifyEmailReader
	mailer       mailer.Mailer
}

func NewErrorReportService(
	reportRepo repository.ErrorReportRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	settings NotifyEmailReader,
	m mailer.Mailer,
) ErrorReportService {
	return &errorReportService{
		reportRepo:   reportRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		settings:     settings,
		mailer:       m,
	}
}

func (s *errorReportService) NotifyErrorQuiz(ctx context.Context, questionID, userID uint, message string) (bool, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return false, fmt.Errorf("empty message: %w", ErrInvalidInput)
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return false, fmt.Errorf("load question %d: %w", questionID, err)
	}

	report := model.ErrorReport{QuestionID: question.ID, UserID: userID, Message: message}
	if err := s.reportRepo.Create(ctx, &report); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("NotifyErrorQuiz: Failed to store report")
		return false, fmt.Errorf("store error report: %w", err)
	}

	to, err := s.settings.NotifyEmail(ctx)
	if err != nil {
		log.Error().Err(err).Msg("NotifyErrorQuiz: Failed to read notify email")
		return false, nil
	}
	if to == nil || strings.TrimSpace(*to) == "" {
		log.Info().Uint("reportID", report.ID).Msg("NotifyErrorQuiz: No notify email configured")
		return false, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("NotifyErrorQuiz: Reporting user not found")
		return false, nil
	}

	msg := mailer.Message{
		To:      []mailer.Address{{Email: strings.TrimSpace(*to)}},
		Subject: fmt.Sprintf("Error reported in question #%d", question.ID),
		Text:    errorReportBody(user, question, message),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Warn().Err(err).Uint("reportID", report.ID).Msg("NotifyErrorQuiz: Email not sent")
		return false, nil
	}

	if err := s.reportRepo.MarkNotified(ctx, report.ID); err != nil {
		log.Warn().Err(err).Uint("reportID", report.ID).Msg("NotifyErrorQuiz: Failed to flag report as notified")
	}
	log.Info().Uint("reportID", report.ID).Uint("questionID", question.ID).Msg("Error report sent")
	return true, nil
}

func (s *errorReportService) ListReports(ctx context.Context, questionID uint) ([]dto.ErrorReportDTO, error) {
	// Retired questions keep their reports.
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("load question %d: %w", questionID, err)
	}
	reports, err := s.reportRepo.FindAllByQuestion(ctx, questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("ListReports: Failed to load reports")
		return nil, fmt.Errorf("load reports: %w", err)
	}
	dtos := make([]dto.ErrorReportDTO, 0, len(reports))
	if err := copier.Copy(&dtos, &reports); err != nil {
		return nil, fmt.Errorf("error preparing report list: %w", err)
	}
	return dtos, nil
}

func errorReportBody(user *model.User, question *model.Question, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User: %s <%s> (id %d)\n\n", user.Name, user.Email, user.ID)
	fmt.Fprintf(&b, "Message:\n%s\n\n", message)
	fmt.Fprintf(&b, "Question #%d:\n%s\n\n", question.ID, question.Prompt)
	fmt.Fprintf(&b, "Rationale:\n%s\n\n", question.Rationale)
	fmt.Fprintf(&b, "Rationale basis:\n%s\n\n", question.RationaleBasis)
	fmt.Fprintf(&b, "Correct answer: %s\n", question.CorrectAnswer())
	return b.String()
}
