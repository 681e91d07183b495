package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/config"
	adminctrl "github.com/lshigami/juristudy/internal/controller/admin"
	userctrl "github.com/lshigami/juristudy/internal/controller/user"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/mailer"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/lshigami/juristudy/internal/router"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/lshigami/juristudy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.DB(t)
	cfg := &config.Config{
		Env:    "test",
		Server: config.Server{CorsAllowOrigins: []string{"*"}},
		Auth:   config.Auth{SessionSecret: "session-secret", JWTSecret: "jwt-secret", JWTTTLHours: 1},
		Quiz:   config.Quiz{SampleSize: config.MaxQuizSampleSize},
	}

	lawRepo := repository.NewLawRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	authSvc, err := service.NewAuthService(userRepo, cfg)
	require.NoError(t, err)
	quizSvc := service.NewQuizAttemptService(lawRepo, questionRepo, repository.NewQuizAttemptRepository(db), db, cfg)
	reportSvc := service.NewErrorReportService(repository.NewErrorReportRepository(db), questionRepo, userRepo, settingRepo, mailer.NewMailer(cfg))
	adminSvc := service.NewAdminContentService(lawRepo, repository.NewContentRepository(db), settingRepo)

	engine := router.NewGinEngine(cfg)
	router.RegisterRoutes(
		engine,
		authSvc,
		userctrl.NewSessionController(authSvc),
		userctrl.NewLawController(service.NewLawCatalogService(lawRepo), reportSvc),
		userctrl.NewQuizAttemptController(quizSvc),
		adminctrl.NewAdminContentController(adminSvc, reportSvc),
	)
	return &testApp{engine: engine, db: db}
}

func (a *testApp) seedUser(t *testing.T, email string, admin bool) *model.User {
	t.Helper()
	hash, err := service.HashPassword("s3cret")
	require.NoError(t, err)
	u := &model.User{Name: "Ana", Email: email, PasswordHash: hash, Active: true, IsAdmin: admin}
	require.NoError(t, a.db.Create(u).Error)
	return u
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) signIn(t *testing.T, email string) (string, []*http.Cookie) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/session", "", dto.SessionCreateRequest{Email: email, Password: "s3cret"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var session dto.SessionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token, w.Result().Cookies()
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestUserRoutesRequireIdentity(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ana@example.com", false)

	w := app.do(t, http.MethodGet, "/api/v1/laws", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = app.do(t, http.MethodGet, "/api/v1/laws", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, cookies := app.signIn(t, "ana@example.com")
	w = app.do(t, http.MethodGet, "/api/v1/laws", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The session cookie alone is enough.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/laws", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ana@example.com", false)
	app.seedUser(t, "boss@example.com", true)

	learner, _ := app.signIn(t, "ana@example.com")
	w := app.do(t, http.MethodGet, "/api/v1/admin/settings/notify-email", learner, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	boss, _ := app.signIn(t, "boss@example.com")
	w = app.do(t, http.MethodPut, "/api/v1/admin/settings/notify-email", boss, map[string]string{"notify_email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = app.do(t, http.MethodPut, "/api/v1/admin/settings/notify-email", boss, map[string]string{"notify_email": "editor@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestQuizFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ana@example.com", false)
	token, _ := app.signIn(t, "ana@example.com")
	chain := testutil.SeedChain(t, app.db, "Civil Code")
	questions := testutil.SeedQuestions(t, app.db, chain.Chapter.ID, 2)

	w := app.do(t, http.MethodPost, "/api/v1/quiz-attempts", token, dto.StartAttemptRequest{LawID: chain.Law.ID + 100})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/quiz-attempts", token, dto.StartAttemptRequest{LawID: chain.Law.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var started dto.AttemptStartedDTO
	decode(t, w, &started)
	assert.Equal(t, 2, started.ItemCount)
	assert.Equal(t, started.RedirectTo, w.Header().Get("Location"))

	w = app.do(t, http.MethodGet, started.RedirectTo, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var item dto.AttemptItemDTO
	decode(t, w, &item)
	assert.Equal(t, 1, item.Position)

	answerPath := fmt.Sprintf("/api/v1/quiz-attempts/%d/items/%d/answer", started.AttemptID, item.ID)
	w = app.do(t, http.MethodPut, answerPath, token, dto.AnswerItemRequest{Answer: "perhaps"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = app.do(t, http.MethodPut, answerPath, token, dto.AnswerItemRequest{Answer: "true"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/quiz-attempts/%d/finish", started.AttemptID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report dto.ScoreReportDTO
	decode(t, w, &report)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Answered)

	w = app.do(t, http.MethodPut, answerPath, token, dto.AnswerItemRequest{Answer: "false"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/quiz-attempts/abc/report", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Emptying the law turns a start into a redirect back to the catalogue.
	for i := range questions {
		testutil.Deactivate(t, app.db, &questions[i])
	}
	w = app.do(t, http.MethodPost, "/api/v1/quiz-attempts", token, dto.StartAttemptRequest{LawID: chain.Law.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var redirect dto.RedirectResponse
	decode(t, w, &redirect)
	assert.Equal(t, userctrl.LawsPath, redirect.RedirectTo)
	assert.Equal(t, "There are no active questions for Civil Code yet.", redirect.Message)
}

func TestReportQuestionErrorOverHTTP(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ana@example.com", false)
	token, _ := app.signIn(t, "ana@example.com")
	chain := testutil.SeedChain(t, app.db, "Civil Code")
	question := testutil.SeedQuestions(t, app.db, chain.Chapter.ID, 1)[0]

	path := fmt.Sprintf("/api/v1/questions/%d/error-reports", question.ID)
	w := app.do(t, http.MethodPost, path, token, dto.ErrorReportRequest{Message: "Outdated article"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var result dto.ErrorReportResultDTO
	decode(t, w, &result)
	// No notification address and no mail transport configured.
	assert.False(t, result.Notified)

	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/questions/%d/error-reports", question.ID+100), token, dto.ErrorReportRequest{Message: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, app.db.Model(&model.ErrorReport{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminListsErrorReports(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "ana@example.com", false)
	app.seedUser(t, "boss@example.com", true)
	learner, _ := app.signIn(t, "ana@example.com")
	boss, _ := app.signIn(t, "boss@example.com")
	chain := testutil.SeedChain(t, app.db, "Civil Code")
	question := testutil.SeedQuestions(t, app.db, chain.Chapter.ID, 1)[0]

	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/questions/%d/error-reports", question.ID), learner, dto.ErrorReportRequest{Message: "Outdated article"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	path := fmt.Sprintf("/api/v1/admin/questions/%d/error-reports", question.ID)
	w = app.do(t, http.MethodGet, path, learner, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodGet, path, boss, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reports []dto.ErrorReportDTO
	decode(t, w, &reports)
	require.Len(t, reports, 1)
	assert.Equal(t, "Outdated article", reports[0].Message)
	assert.False(t, reports[0].Notified)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/questions/%d/error-reports", question.ID+100), boss, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
