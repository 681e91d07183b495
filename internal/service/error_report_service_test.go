package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/juristudy/internal/mailer"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/lshigami/juristudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSettings struct {
	email *string
	err   error
}

func (f fakeSettings) NotifyEmail(context.Context) (*string, error) {
	return f.email, f.err
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func strPtr(s string) *string { return &s }

func newErrorReportService(db *gorm.DB, settings service.NotifyEmailReader, m mailer.Mailer) service.ErrorReportService {
	return service.NewErrorReportService(
		repository.NewErrorReportRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewUserRepository(db),
		settings,
		m,
	)
}

func storedReports(t *testing.T, db *gorm.DB, questionID uint) []model.ErrorReport {
	t.Helper()
	reports, err := repository.NewErrorReportRepository(db).FindAllByQuestion(context.Background(), questionID)
	require.NoError(t, err)
	return reports
}

func TestNotifyErrorQuiz(t *testing.T) {
	tests := []struct {
		name         string
		settings     fakeSettings
		mailErr      error
		unknownUser  bool
		wantNotified bool
		wantSent     int
	}{
		{name: "no notify email", settings: fakeSettings{}},
		{name: "blank notify email", settings: fakeSettings{email: strPtr("  ")}},
		{name: "settings unreadable", settings: fakeSettings{err: errors.New("db down")}},
		{name: "reporting user missing", settings: fakeSettings{email: strPtr("editor@example.com")}, unknownUser: true},
		{name: "mail transport fails", settings: fakeSettings{email: strPtr("editor@example.com")}, mailErr: errors.New("503")},
		{name: "mail accepted", settings: fakeSettings{email: strPtr("editor@example.com")}, wantNotified: true, wantSent: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.DB(t)
			ctx := context.Background()
			chain := testutil.SeedChain(t, db, "Civil Code")
			question := testutil.SeedQuestions(t, db, chain.Chapter.ID, 1)[0]
			user := testutil.SeedUser(t, db, "ana@example.com")
			userID := user.ID
			if tt.unknownUser {
				userID += 100
			}

			m := &fakeMailer{err: tt.mailErr}
			svc := newErrorReportService(db, tt.settings, m)

			notified, err := svc.NotifyErrorQuiz(ctx, question.ID, userID, "  The article was repealed.  ")
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotified, notified)
			assert.Len(t, m.sent, tt.wantSent)

			reports := storedReports(t, db, question.ID)
			require.Len(t, reports, 1)
			assert.Equal(t, "The article was repealed.", reports[0].Message)
			assert.Equal(t, userID, reports[0].UserID)
			assert.Equal(t, tt.wantNotified, reports[0].Notified)
		})
	}
}

func TestNotifyErrorQuizEmailContent(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	question := testutil.SeedQuestions(t, db, chain.Chapter.ID, 1)[0]
	user := testutil.SeedUser(t, db, "ana@example.com")

	m := &fakeMailer{}
	svc := newErrorReportService(db, fakeSettings{email: strPtr(" editor@example.com ")}, m)
	notified, err := svc.NotifyErrorQuiz(ctx, question.ID, user.ID, "Wrong article number")
	require.NoError(t, err)
	require.True(t, notified)

	require.Len(t, m.sent, 1)
	msg := m.sent[0]
	require.Len(t, msg.To, 1)
	assert.Equal(t, "editor@example.com", msg.To[0].Email)
	assert.Contains(t, msg.Subject, "#")
	assert.Contains(t, msg.Text, user.Email)
	assert.Contains(t, msg.Text, "Wrong article number")
	assert.Contains(t, msg.Text, question.Prompt)
	assert.Contains(t, msg.Text, question.RationaleBasis)
	assert.Contains(t, msg.Text, "Correct answer: "+question.CorrectAnswer())
}

func TestNotifyErrorQuizRejectsBadInput(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	question := testutil.SeedQuestions(t, db, chain.Chapter.ID, 1)[0]
	user := testutil.SeedUser(t, db, "ana@example.com")
	svc := newErrorReportService(db, fakeSettings{email: strPtr("editor@example.com")}, &fakeMailer{})

	_, err := svc.NotifyErrorQuiz(ctx, question.ID, user.ID, "   ")
	assert.True(t, errors.Is(err, service.ErrInvalidInput))

	_, err = svc.NotifyErrorQuiz(ctx, question.ID+100, user.ID, "typo")
	assert.True(t, errors.Is(err, service.ErrNotFound))

	assert.Empty(t, storedReports(t, db, question.ID))
}

func TestListReports(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	chain := testutil.SeedChain(t, db, "Civil Code")
	questions := testutil.SeedQuestions(t, db, chain.Chapter.ID, 2)
	user := testutil.SeedUser(t, db, "ana@example.com")
	svc := newErrorReportService(db, fakeSettings{}, &fakeMailer{})

	_, err := svc.NotifyErrorQuiz(ctx, questions[0].ID, user.ID, "Typo in the prompt")
	require.NoError(t, err)
	_, err = svc.NotifyErrorQuiz(ctx, questions[1].ID, user.ID, "Wrong article")
	require.NoError(t, err)

	// Reports outlive the question's retirement.
	require.NoError(t, db.Model(&questions[0]).Update("active", false).Error)

	reports, err := svc.ListReports(ctx, questions[0].ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Typo in the prompt", reports[0].Message)
	assert.Equal(t, user.ID, reports[0].UserID)
	assert.Equal(t, questions[0].ID, reports[0].QuestionID)

	_, err = svc.ListReports(ctx, questions[1].ID+100)
	assert.True(t, errors.Is(err, service.ErrNotFound))
}
