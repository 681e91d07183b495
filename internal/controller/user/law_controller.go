package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/internal/controller"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/middleware"
	"github.com/lshigami/juristudy/internal/service"
)

type LawController struct {
	lawCatalogService  service.LawCatalogService
	errorReportService service.ErrorReportService
}

func NewLawController(lcs service.LawCatalogService, ers service.ErrorReportService) *LawController {
	return &LawController{lawCatalogService: lcs, errorReportService: ers}
}

// ListLaws godoc
// @Summary (User) List laws available for study
// @Tags User - Laws
// @Produce json
// @Success 200 {array} dto.LawSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /laws [get]
func (c *LawController) ListLaws(ctx *gin.Context) {
	laws, err := c.lawCatalogService.ListLaws(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve laws")
		return
	}
	ctx.JSON(http.StatusOK, laws)
}

// ReportQuestionError godoc
// @Summary (User) Report an error in a question
// @Description Stores the report and emails the notify address when one is configured.
// @Tags User - Laws
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param request body dto.ErrorReportRequest true "What is wrong"
// @Success 201 {object} dto.ErrorReportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id}/error-reports [post]
func (c *LawController) ReportQuestionError(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.ErrorReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	notified, err := c.errorReportService.NotifyErrorQuiz(ctx.Request.Context(), questionID, middleware.UserID(ctx), req.Message)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to report error")
		return
	}
	ctx.JSON(http.StatusCreated, dto.ErrorReportResultDTO{Notified: notified})
}
