package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/juristudy/config"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/lshigami/juristudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB, sampleSize int) service.QuizAttemptService {
	cfg := &config.Config{Quiz: config.Quiz{SampleSize: sampleSize}}
	return service.NewQuizAttemptService(
		repository.NewLawRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewQuizAttemptRepository(db),
		db,
		cfg,
	)
}

func countAttempts(t *testing.T, db *gorm.DB, userID uint, status string) int64 {
	t.Helper()
	var n int64
	q := db.Model(&model.QuizAttempt{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestStartAttemptNoEligibleQuestions(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Consumer Code")
	retired := testutil.SeedQuestions(t, db, chain.Chapter.ID, 2)
	for i := range retired {
		testutil.Deactivate(t, db, &retired[i])
	}
	user := testutil.SeedUser(t, db, "ana@example.com")

	svc := newQuizService(db, 8)
	started, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.Error(t, err)
	assert.Nil(t, started)

	var noEligible *service.NoEligibleQuestionsError
	require.True(t, errors.As(err, &noEligible))
	assert.Equal(t, chain.Law.ID, noEligible.LawID)
	assert.Equal(t, "There are no active questions for Consumer Code yet.", noEligible.Message())
	assert.Zero(t, countAttempts(t, db, user.ID, ""))
}

func TestStartAttemptUnknownOrInactiveLaw(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Consumer Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 2)
	user := testutil.SeedUser(t, db, "ana@example.com")
	svc := newQuizService(db, 8)

	_, err := svc.StartAttempt(ctx, chain.Law.ID+100, user.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))

	testutil.Deactivate(t, db, chain.Law)
	_, err = svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	assert.Zero(t, countAttempts(t, db, user.ID, ""))
}

func TestStartAttemptSamplesAtMostEightActiveQuestions(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 15)
	closed := testutil.SeedChapter(t, db, chain.Title.ID, "Closed chapter")
	hidden := testutil.SeedQuestions(t, db, closed.ID, 5)
	testutil.Deactivate(t, db, closed)
	user := testutil.SeedUser(t, db, "ana@example.com")

	// Out of range sizes fall back to the cap.
	svc := newQuizService(db, 50)
	started, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, started.ItemCount)
	assert.Equal(t, service.AttemptItemPath(started.AttemptID, started.FirstItemID), started.RedirectTo)

	var items []model.QuizAttemptItem
	require.NoError(t, db.Where("quiz_attempt_id = ?", started.AttemptID).Order("id ASC").Find(&items).Error)
	require.Len(t, items, 8)
	assert.Equal(t, started.FirstItemID, items[0].ID)

	hiddenIDs := map[uint]bool{}
	for _, q := range hidden {
		hiddenIDs[q.ID] = true
	}
	for _, item := range items {
		assert.False(t, hiddenIDs[item.QuestionID], "question %d has an inactive chapter", item.QuestionID)
		assert.Equal(t, model.AnswerNone, item.Answer)
	}
}

func TestStartAttemptSmallerSampleSize(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 10)
	user := testutil.SeedUser(t, db, "ana@example.com")

	started, err := newQuizService(db, 3).StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, started.ItemCount)
}

func TestStartAttemptReplacesUnfinishedAttempt(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 4)
	user := testutil.SeedUser(t, db, "ana@example.com")
	other := testutil.SeedUser(t, db, "bia@example.com")
	svc := newQuizService(db, 8)

	othersAttempt, err := svc.StartAttempt(ctx, chain.Law.ID, other.ID)
	require.NoError(t, err)

	done, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	_, err = svc.FinishAttempt(ctx, done.AttemptID, user.ID)
	require.NoError(t, err)

	stale, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	fresh, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, stale.AttemptID, fresh.AttemptID)

	assert.EqualValues(t, 1, countAttempts(t, db, user.ID, model.AttemptStatusInProgress))
	assert.EqualValues(t, 1, countAttempts(t, db, user.ID, model.AttemptStatusFinished))
	assert.EqualValues(t, 1, countAttempts(t, db, other.ID, model.AttemptStatusInProgress))

	var staleItems int64
	require.NoError(t, db.Model(&model.QuizAttemptItem{}).Where("quiz_attempt_id = ?", stale.AttemptID).Count(&staleItems).Error)
	assert.Zero(t, staleItems)

	_, err = svc.GetItem(ctx, stale.AttemptID, stale.FirstItemID, user.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))

	_, err = svc.GetItem(ctx, othersAttempt.AttemptID, othersAttempt.FirstItemID, other.ID)
	assert.NoError(t, err)
}

func TestAttemptAnswerFinishAndReport(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 3)
	user := testutil.SeedUser(t, db, "ana@example.com")
	svc := newQuizService(db, 8)

	started, err := svc.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, started.ItemCount)

	first, err := svc.GetItem(ctx, started.AttemptID, started.FirstItemID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 3, first.Total)
	assert.Nil(t, first.PrevItemID)
	require.NotNil(t, first.NextItemID)
	assert.NotEmpty(t, first.Prompt)

	second, err := svc.GetItem(ctx, started.AttemptID, *first.NextItemID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, second.PrevItemID)
	assert.Equal(t, first.ID, *second.PrevItemID)
	require.NotNil(t, second.NextItemID)

	var q1, q2 model.Question
	require.NoError(t, db.First(&q1, first.QuestionID).Error)
	require.NoError(t, db.First(&q2, second.QuestionID).Error)

	// One right answer, one wrong answer, one left blank.
	res, err := svc.AnswerItem(ctx, started.AttemptID, first.ID, user.ID, q1.CorrectAnswer())
	require.NoError(t, err)
	require.NotNil(t, res.NextItemID)
	assert.Equal(t, second.ID, *res.NextItemID)

	wrong := model.AnswerTrue
	if q2.Correct {
		wrong = model.AnswerFalse
	}
	_, err = svc.AnswerItem(ctx, started.AttemptID, second.ID, user.ID, wrong)
	require.NoError(t, err)

	_, err = svc.AnswerItem(ctx, started.AttemptID, second.ID, user.ID, "maybe")
	assert.True(t, errors.Is(err, service.ErrInvalidAnswer))

	report, err := svc.FinishAttempt(ctx, started.AttemptID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptStatusFinished, report.Status)
	require.NotNil(t, report.FinishedAt)
	assert.Equal(t, "Civil Code", report.LawName)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Answered)
	assert.Equal(t, 1, report.Correct)
	assert.Equal(t, 33.3, report.Percentage)

	require.Len(t, report.Items, 3)
	assert.Equal(t, first.ID, report.Items[0].ItemID)
	assert.True(t, report.Items[0].IsCorrect)
	assert.Equal(t, q1.CorrectAnswer(), report.Items[0].UserAnswer)
	assert.Equal(t, q1.Rationale, report.Items[0].Rationale)
	assert.Equal(t, q1.RationaleBasis, report.Items[0].RationaleBasis)
	assert.False(t, report.Items[1].IsCorrect)
	assert.Equal(t, wrong, report.Items[1].UserAnswer)
	assert.False(t, report.Items[2].IsCorrect)
	assert.False(t, report.Items[2].Answered)
	assert.Equal(t, "", report.Items[2].UserAnswer)

	_, err = svc.AnswerItem(ctx, started.AttemptID, first.ID, user.ID, model.AnswerTrue)
	assert.True(t, errors.Is(err, service.ErrAttemptFinished))

	again, err := svc.FinishAttempt(ctx, started.AttemptID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, report.FinishedAt.Unix(), again.FinishedAt.Unix())

	stored, err := svc.GetScoreReport(ctx, started.AttemptID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Correct, stored.Correct)
}

func TestAttemptOwnership(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 2)
	owner := testutil.SeedUser(t, db, "ana@example.com")
	intruder := testutil.SeedUser(t, db, "eve@example.com")
	svc := newQuizService(db, 8)

	started, err := svc.StartAttempt(ctx, chain.Law.ID, owner.ID)
	require.NoError(t, err)

	_, err = svc.GetScoreReport(ctx, started.AttemptID, intruder.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	_, err = svc.GetItem(ctx, started.AttemptID, started.FirstItemID, intruder.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	_, err = svc.AnswerItem(ctx, started.AttemptID, started.FirstItemID, intruder.ID, model.AnswerTrue)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	_, err = svc.FinishAttempt(ctx, started.AttemptID, intruder.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))

	_, err = svc.GetItem(ctx, started.AttemptID, started.FirstItemID+100, owner.ID)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

// createFailsRepository refuses to insert attempts, including inside a transaction.
type createFailsRepository struct {
	repository.QuizAttemptRepository
}

func (r createFailsRepository) WithTx(tx *gorm.DB) repository.QuizAttemptRepository {
	return createFailsRepository{r.QuizAttemptRepository.WithTx(tx)}
}

func (r createFailsRepository) Create(context.Context, *model.QuizAttempt) error {
	return errors.New("insert rejected")
}

func TestStartAttemptRollsBackDiscardWhenCreateFails(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 3)
	user := testutil.SeedUser(t, db, "ana@example.com")

	previous, err := newQuizService(db, 8).StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)

	cfg := &config.Config{Quiz: config.Quiz{SampleSize: 8}}
	failing := service.NewQuizAttemptService(
		repository.NewLawRepository(db),
		repository.NewQuestionRepository(db),
		createFailsRepository{repository.NewQuizAttemptRepository(db)},
		db,
		cfg,
	)
	started, err := failing.StartAttempt(ctx, chain.Law.ID, user.ID)
	require.Error(t, err)
	assert.Nil(t, started)

	var attempts []model.QuizAttempt
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&attempts).Error)
	require.Len(t, attempts, 1)
	assert.Equal(t, previous.AttemptID, attempts[0].ID)
	assert.Equal(t, model.AttemptStatusInProgress, attempts[0].Status)

	var items int64
	require.NoError(t, db.Model(&model.QuizAttemptItem{}).Where("quiz_attempt_id = ?", previous.AttemptID).Count(&items).Error)
	assert.EqualValues(t, 3, items)
}

// finishedAfterLoadRepository finishes the attempt right after it was read,
// as a concurrent FinishAttempt would.
type finishedAfterLoadRepository struct {
	repository.QuizAttemptRepository
}

func (r finishedAfterLoadRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.QuizAttempt, error) {
	attempt, err := r.QuizAttemptRepository.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	snapshot := *attempt
	if err := r.QuizAttemptRepository.MarkFinished(ctx, &snapshot, time.Now()); err != nil {
		return nil, err
	}
	return attempt, nil
}

func TestAnswerItemRacingFinish(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	testutil.SeedQuestions(t, db, chain.Chapter.ID, 2)
	user := testutil.SeedUser(t, db, "ana@example.com")

	started, err := newQuizService(db, 8).StartAttempt(ctx, chain.Law.ID, user.ID)
	require.NoError(t, err)

	racing := service.NewQuizAttemptService(
		repository.NewLawRepository(db),
		repository.NewQuestionRepository(db),
		finishedAfterLoadRepository{repository.NewQuizAttemptRepository(db)},
		db,
		&config.Config{Quiz: config.Quiz{SampleSize: 8}},
	)
	_, err = racing.AnswerItem(ctx, started.AttemptID, started.FirstItemID, user.ID, model.AnswerTrue)
	assert.True(t, errors.Is(err, service.ErrAttemptFinished))

	var item model.QuizAttemptItem
	require.NoError(t, db.First(&item, started.FirstItemID).Error)
	assert.Equal(t, model.AnswerNone, item.Answer)
}
