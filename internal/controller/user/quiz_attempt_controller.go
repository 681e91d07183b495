package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/internal/controller"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/middleware"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/rs/zerolog/log"
)

// LawsPath is where a learner is sent back when a law has nothing to study.
const LawsPath = "/api/v1/laws"

type QuizAttemptController struct {
	quizAttemptService service.QuizAttemptService
}

func NewQuizAttemptController(qas service.QuizAttemptService) *QuizAttemptController {
	return &QuizAttemptController{quizAttemptService: qas}
}

// StartAttempt godoc
// @Summary (User) Start a quiz on a law
// @Description Draws up to 8 random active questions of the law, discards the caller's unfinished attempt and creates a new one.
// @Tags User - Quiz Attempts
// @Accept json
// @Produce json
// @Param request body dto.StartAttemptRequest true "Law to study"
// @Success 201 {object} dto.AttemptStartedDTO "Attempt created; Location points at the first item"
// @Success 200 {object} dto.RedirectResponse "The law has no eligible questions"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Law not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-attempts [post]
func (c *QuizAttemptController) StartAttempt(ctx *gin.Context) {
	var req dto.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	userID := middleware.UserID(ctx)

	started, err := c.quizAttemptService.StartAttempt(ctx.Request.Context(), req.LawID, userID)
	if err != nil {
		var empty *service.NoEligibleQuestionsError
		if errors.As(err, &empty) {
			ctx.JSON(http.StatusOK, dto.RedirectResponse{Message: empty.Message(), RedirectTo: LawsPath})
			return
		}
		controller.RespondError(ctx, err, "Failed to start quiz attempt")
		return
	}
	log.Info().Uint("attemptID", started.AttemptID).Uint("userID", userID).Msg("User StartAttempt: Attempt created")
	ctx.Header("Location", started.RedirectTo)
	ctx.JSON(http.StatusCreated, started)
}

// GetItem godoc
// @Summary (User) Get one item of a running attempt
// @Tags User - Quiz Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param item_id path int true "Item ID"
// @Success 200 {object} dto.AttemptItemDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt or item not found"
// @Router /quiz-attempts/{attempt_id}/items/{item_id} [get]
func (c *QuizAttemptController) GetItem(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	itemID, ok := controller.ParseIDParam(ctx, "item_id")
	if !ok {
		return
	}
	item, err := c.quizAttemptService.GetItem(ctx.Request.Context(), attemptID, itemID, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve attempt item")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// AnswerItem godoc
// @Summary (User) Answer one item
// @Tags User - Quiz Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param item_id path int true "Item ID"
// @Param request body dto.AnswerItemRequest true "\"true\" or \"false\""
// @Success 200 {object} dto.AnswerResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answer"
// @Failure 404 {object} dto.ErrorResponse "Attempt or item not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already finished"
// @Router /quiz-attempts/{attempt_id}/items/{item_id}/answer [put]
func (c *QuizAttemptController) AnswerItem(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	itemID, ok := controller.ParseIDParam(ctx, "item_id")
	if !ok {
		return
	}
	var req dto.AnswerItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	result, err := c.quizAttemptService.AnswerItem(ctx.Request.Context(), attemptID, itemID, middleware.UserID(ctx), req.Answer)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to store answer")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// FinishAttempt godoc
// @Summary (User) Finish an attempt and get its score
// @Tags User - Quiz Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.ScoreReportDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz-attempts/{attempt_id}/finish [post]
func (c *QuizAttemptController) FinishAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	report, err := c.quizAttemptService.FinishAttempt(ctx.Request.Context(), attemptID, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to finish attempt")
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// GetScoreReport godoc
// @Summary (User) Get the scored report of an attempt
// @Description Items in the order they were drawn, each with the user's answer, the correct answer and the rationale.
// @Tags User - Quiz Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.ScoreReportDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz-attempts/{attempt_id}/report [get]
func (c *QuizAttemptController) GetScoreReport(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	report, err := c.quizAttemptService.GetScoreReport(ctx.Request.Context(), attemptID, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve score report")
		return
	}
	ctx.JSON(http.StatusOK, report)
}
