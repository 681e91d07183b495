package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/juristudy/config"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizAttemptService runs the attempt lifecycle: start, answer, finish, score.
type QuizAttemptService interface {
	StartAttempt(ctx context.Context, lawID, userID uint) (*dto.AttemptStartedDTO, error)
	GetItem(ctx context.Context, attemptID, itemID, userID uint) (*dto.AttemptItemDTO, error)
	AnswerItem(ctx context.Context, attemptID, itemID, userID uint, answer string) (*dto.AnswerResultDTO, error)
	FinishAttempt(ctx context.Context, attemptID, userID uint) (*dto.ScoreReportDTO, error)
	GetScoreReport(ctx context.Context, attemptID, userID uint) (*dto.ScoreReportDTO, error)
}

type quizAttemptService struct {
	lawRepo      repository.LawRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.QuizAttemptRepository
	db           *gorm.DB // Used for transactions within service methods
	sampleSize   int
	now          func() time.Time
}

func NewQuizAttemptService(
	lawRepo repository.LawRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.QuizAttemptRepository,
	db *gorm.DB,
	cfg *config.Config,
) QuizAttemptService {
	size := cfg.Quiz.SampleSize
	if size <= 0 || size > config.MaxQuizSampleSize {
		size = config.MaxQuizSampleSize
	}
	return &quizAttemptService{
		lawRepo:      lawRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		db:           db,
		sampleSize:   size,
		now:          time.Now,
	}
}

// AttemptItemPath is where the client answers one item.
func AttemptItemPath(attemptID, itemID uint) string {
	return fmt.Sprintf("/api/v1/quiz-attempts/%d/items/%d", attemptID, itemID)
}

func (s *quizAttemptService) StartAttempt(ctx context.Context, lawID, userID uint) (*dto.AttemptStartedDTO, error) {
	law, err := s.lawRepo.FindActiveByID(ctx, lawID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("law %d: %w", lawID, ErrNotFound)
		}
		log.Error().Err(err).Uint("lawID", lawID).Msg("StartAttempt: Failed to load law")
		return nil, fmt.Errorf("load law %d: %w", lawID, err)
	}

	questions, err := s.questionRepo.SampleEligible(ctx, lawID, s.sampleSize)
	if err != nil {
		log.Error().Err(err).Uint("lawID", lawID).Msg("StartAttempt: Failed to sample questions")
		return nil, fmt.Errorf("sample questions for law %d: %w", lawID, err)
	}
	if len(questions) == 0 {
		log.Info().Uint("lawID", lawID).Uint("userID", userID).Msg("StartAttempt: Law has no eligible questions")
		return nil, &NoEligibleQuestionsError{LawID: law.ID, LawName: law.Name}
	}
	if len(questions) > s.sampleSize {
		questions = questions[:s.sampleSize]
	}

	attempt := model.QuizAttempt{
		UserID: userID,
		LawID:  law.ID,
		Status: model.AttemptStatusInProgress,
		Items:  make([]model.QuizAttemptItem, 0, len(questions)),
	}
	for _, q := range questions {
		attempt.Items = append(attempt.Items, model.QuizAttemptItem{QuestionID: q.ID, Answer: model.AnswerNone})
	}

	// Discarding the stale attempt and creating the new one is all-or-nothing.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.attemptRepo.WithTx(tx)
		if err := repo.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("lock user %d: %w", userID, err)
		}
		removed, err := repo.DeleteInProgressByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("discard in-progress attempts: %w", err)
		}
		if removed > 0 {
			log.Info().Uint("userID", userID).Int64("removed", removed).Msg("StartAttempt: Discarded unfinished attempt")
		}
		if err := repo.Create(ctx, &attempt); err != nil {
			return fmt.Errorf("create attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("lawID", lawID).Uint("userID", userID).Msg("StartAttempt: Transaction failed")
		return nil, err
	}

	// The first item is the first sampled question.
	first := attempt.Items[0]
	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("lawID", law.ID).
		Uint("userID", userID).
		Int("items", len(attempt.Items)).
		Msg("Quiz attempt started")

	return &dto.AttemptStartedDTO{
		AttemptID:   attempt.ID,
		LawID:       law.ID,
		ItemCount:   len(attempt.Items),
		FirstItemID: first.ID,
		RedirectTo:  AttemptItemPath(attempt.ID, first.ID),
	}, nil
}

func (s *quizAttemptService) loadOwned(ctx context.Context, attemptID, userID uint) (*model.QuizAttempt, error) {
	attempt, err := s.attemptRepo.FindByIDForUser(ctx, attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
		}
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}
	return attempt, nil
}

func itemIndex(attempt *model.QuizAttempt, itemID uint) int {
	for i, item := range attempt.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func nextItemID(attempt *model.QuizAttempt, idx int) *uint {
	if idx+1 < len(attempt.Items) {
		id := attempt.Items[idx+1].ID
		return &id
	}
	return nil
}

func (s *quizAttemptService) GetItem(ctx context.Context, attemptID, itemID, userID uint) (*dto.AttemptItemDTO, error) {
	attempt, err := s.loadOwned(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	idx := itemIndex(attempt, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("item %d of attempt %d: %w", itemID, attemptID, ErrNotFound)
	}
	item := attempt.Items[idx]

	resp := &dto.AttemptItemDTO{
		ID:         item.ID,
		AttemptID:  attempt.ID,
		QuestionID: item.QuestionID,
		Prompt:     item.Question.Prompt,
		Answer:     item.Answer,
		Position:   idx + 1,
		Total:      len(attempt.Items),
		NextItemID: nextItemID(attempt, idx),
		Status:     attempt.Status,
	}
	if idx > 0 {
		prev := attempt.Items[idx-1].ID
		resp.PrevItemID = &prev
	}
	return resp, nil
}

func (s *quizAttemptService) AnswerItem(ctx context.Context, attemptID, itemID, userID uint, answer string) (*dto.AnswerResultDTO, error) {
	if answer != model.AnswerTrue && answer != model.AnswerFalse {
		return nil, ErrInvalidAnswer
	}
	attempt, err := s.loadOwned(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if !attempt.InProgress() {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptFinished)
	}
	idx := itemIndex(attempt, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("item %d of attempt %d: %w", itemID, attemptID, ErrNotFound)
	}

	item := attempt.Items[idx]
	now := s.now()
	item.Answer = answer
	item.AnsweredAt = &now
	stored, err := s.attemptRepo.UpdateItemAnswer(ctx, &item)
	if err != nil {
		log.Error().Err(err).Uint("itemID", itemID).Msg("AnswerItem: Failed to store answer")
		return nil, fmt.Errorf("store answer: %w", err)
	}
	if !stored {
		// Finished between the load and the update.
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptFinished)
	}

	return &dto.AnswerResultDTO{
		ItemID:     item.ID,
		Answer:     item.Answer,
		NextItemID: nextItemID(attempt, idx),
	}, nil
}

func (s *quizAttemptService) FinishAttempt(ctx context.Context, attemptID, userID uint) (*dto.ScoreReportDTO, error) {
	attempt, err := s.loadOwned(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.InProgress() {
		if err := s.attemptRepo.MarkFinished(ctx, attempt, s.now()); err != nil {
			log.Error().Err(err).Uint("attemptID", attemptID).Msg("FinishAttempt: Failed to update status")
			return nil, fmt.Errorf("finish attempt %d: %w", attemptID, err)
		}
		log.Info().Uint("attemptID", attemptID).Uint("userID", userID).Msg("Quiz attempt finished")
	}
	return s.GetScoreReport(ctx, attemptID, userID)
}

func (s *quizAttemptService) GetScoreReport(ctx context.Context, attemptID, userID uint) (*dto.ScoreReportDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetScoreReport: Failed to load attempt")
		return nil, fmt.Errorf("load attempt %d: %w", attemptID, err)
	}

	report := &dto.ScoreReportDTO{
		AttemptID:  attempt.ID,
		LawID:      attempt.LawID,
		LawName:    attempt.Law.Name,
		Status:     attempt.Status,
		Total:      len(attempt.Items),
		Items:      make([]dto.ScoredItemDTO, 0, len(attempt.Items)),
		CreatedAt:  attempt.CreatedAt,
		FinishedAt: attempt.FinishedAt,
	}
	for _, item := range attempt.Items {
		isCorrect, userAnswer, answered := ScoreAnswer(item.Answer, item.Question.Correct)
		if answered {
			report.Answered++
		}
		if isCorrect {
			report.Correct++
		}
		report.Items = append(report.Items, dto.ScoredItemDTO{
			ItemID:         item.ID,
			QuestionID:     item.QuestionID,
			Prompt:         item.Question.Prompt,
			Rationale:      item.Question.Rationale,
			RationaleBasis: item.Question.RationaleBasis,
			CorrectAnswer:  item.Question.CorrectAnswer(),
			UserAnswer:     userAnswer,
			Answered:       answered,
			IsCorrect:      isCorrect,
		})
	}
	report.Percentage = Percentage(report.Correct, report.Total)
	return report, nil
}
