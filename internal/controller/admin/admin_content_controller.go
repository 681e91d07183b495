package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/internal/controller"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminContentController struct {
	adminContentService service.AdminContentService
	errorReportService  service.ErrorReportService
}

func NewAdminContentController(
	adminContentService service.AdminContentService,
	errorReportService service.ErrorReportService,
) *AdminContentController {
	return &AdminContentController{
		adminContentService: adminContentService,
		errorReportService:  errorReportService,
	}
}

// CreateSubject godoc
// @Summary (Admin) Create a subject
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param subject_data body dto.SubjectCreateDTO true "Subject"
// @Success 201 {object} dto.SubjectResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/subjects [post]
func (c *AdminContentController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.adminContentService.CreateSubject(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create subject")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateLaw godoc
// @Summary (Admin) Create a law with its content tree
// @Description Admin creates a law under a subject with nested titles, chapters and questions.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param law_data body dto.LawCreateDTO true "Law creation data including titles, chapters and questions"
// @Success 201 {object} dto.LawResponseDTO "Law created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/laws [post]
func (c *AdminContentController) CreateLaw(ctx *gin.Context) {
	var req dto.LawCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	lawResp, err := c.adminContentService.CreateLaw(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create law")
		return
	}
	ctx.JSON(http.StatusCreated, lawResp)
}

// GetLaw godoc
// @Summary (Admin) Get a law with its content tree
// @Tags Admin - Content
// @Produce json
// @Param law_id path int true "Law ID"
// @Success 200 {object} dto.LawResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Law not found"
// @Router /admin/laws/{law_id} [get]
func (c *AdminContentController) GetLaw(ctx *gin.Context) {
	lawID, ok := controller.ParseIDParam(ctx, "law_id")
	if !ok {
		return
	}
	lawResp, err := c.adminContentService.GetLaw(ctx.Request.Context(), lawID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve law")
		return
	}
	ctx.JSON(http.StatusOK, lawResp)
}

// SetActive godoc
// @Summary (Admin) Activate or deactivate content
// @Description Deactivating any link of the chain removes its questions from new attempts.
// @Tags Admin - Content
// @Accept json
// @Param kind path string true "subject, law, title, chapter or question"
// @Param id path int true "ID"
// @Param body body dto.SetActiveDTO true "New status"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /admin/content/{kind}/{id}/active [put]
func (c *AdminContentController) SetActive(ctx *gin.Context) {
	kind := repository.ContentKind(ctx.Param("kind"))
	switch kind {
	case repository.KindSubject, repository.KindLaw, repository.KindTitle, repository.KindChapter, repository.KindQuestion:
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unknown content kind"})
		return
	}
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SetActiveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	if err := c.adminContentService.SetActive(ctx.Request.Context(), kind, id, *req.Active); err != nil {
		controller.RespondError(ctx, err, "Failed to change status")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetNotifyEmail godoc
// @Summary (Admin) Get the error report notification address
// @Tags Admin - Settings
// @Produce json
// @Success 200 {object} dto.NotifyEmailDTO
// @Router /admin/settings/notify-email [get]
func (c *AdminContentController) GetNotifyEmail(ctx *gin.Context) {
	resp, err := c.adminContentService.GetNotifyEmail(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to read settings")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetNotifyEmail godoc
// @Summary (Admin) Set or clear the error report notification address
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Param body body dto.NotifyEmailDTO true "Address, null to disable"
// @Success 200 {object} dto.NotifyEmailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid email"
// @Router /admin/settings/notify-email [put]
func (c *AdminContentController) SetNotifyEmail(ctx *gin.Context) {
	var req dto.NotifyEmailDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.adminContentService.SetNotifyEmail(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to store settings")
		return
	}
	log.Info().Bool("enabled", resp.NotifyEmail != nil).Msg("Admin SetNotifyEmail: Notify email updated")
	ctx.JSON(http.StatusOK, resp)
}

// ListErrorReports godoc
// @Summary (Admin) List error reports filed against a question
// @Tags Admin - Content
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {array} dto.ErrorReportDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{question_id}/error-reports [get]
func (c *AdminContentController) ListErrorReports(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	reports, err := c.errorReportService.ListReports(ctx.Request.Context(), questionID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list error reports")
		return
	}
	ctx.JSON(http.StatusOK, reports)
}
