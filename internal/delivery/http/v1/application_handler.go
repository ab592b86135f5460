package v1

import (
	"net/http"
	"strconv"

	"jobdesk-backend/internal/delivery/http/response"
	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/:id/applications", handler.Apply)
		jobs.GET("/:id/applications", handler.ListApplicants)
	}

	protected.GET("/applications", handler.ListOwn)
}

type ApplyRequest struct {
	CVID        int64  `json:"cvId" binding:"required,gt=0"`
	CoverLetter string `json:"coverLetter" binding:"max=4000"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits an application using one of the seeker's own CVs
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      int           true  "Job ID"
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	app := &domain.Application{
		JobID: jobID,
		CVID:  req.CVID,
	}
	if req.CoverLetter != "" {
		app.CoverLetter = &req.CoverLetter
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.Apply(c.Request.Context(), userID, app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.appUC.ListApplicants(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant list", apps)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.appUC.ListOwnApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", apps)
}
