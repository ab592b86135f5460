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

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(protected *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := protected.Group("/cvs")
	{
		cvs.POST("", handler.Create)
		cvs.GET("", handler.List)
		cvs.GET("/:id", handler.Get)
		cvs.PUT("/:id", handler.Update)
		cvs.PUT("/:id/primary", handler.SetPrimary)
		cvs.DELETE("/:id", handler.Delete)
	}
}

type CVRequest struct {
	Name    string `json:"name" binding:"required"`
	FileURL string `json:"fileUrl" binding:"required,url"`
}

// Create godoc
// @Summary      Add a CV
// @Description  Register a CV for the caller; the first CV becomes primary
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        cv   body      CVRequest  true  "CV JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Create(c *gin.Context) {
	var req CVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	cv := &domain.CV{Name: req.Name, FileURL: req.FileURL}

	if err := h.cvUC.CreateCV(c.Request.Context(), userID, cv); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV added", cv)
}

func (h *CVHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	cvs, err := h.cvUC.ListCVs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV list", cvs)
}

func (h *CVHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	cv, err := h.cvUC.GetCV(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV details", cv)
}

func (h *CVHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req CVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	cv := &domain.CV{ID: id, Name: req.Name, FileURL: req.FileURL}

	if err := h.cvUC.UpdateCV(c.Request.Context(), userID, cv); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV updated", cv)
}

// SetPrimary godoc
// @Summary      Mark a CV as primary
// @Description  Reassigns the primary flag so exactly one of the caller's CVs holds it
// @Tags         cvs
// @Produce      json
// @Param        id   path      int  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id}/primary [put]
// @Security     BearerAuth
func (h *CVHandler) SetPrimary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.cvUC.SetPrimaryCV(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Primary CV updated", nil)
}

func (h *CVHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.cvUC.DeleteCV(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV deleted", nil)
}
