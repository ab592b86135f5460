package v1

import (
	"net/http"
	"strconv"
	"time"

	"jobdesk-backend/internal/delivery/http/response"
	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(protected *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	seekers := protected.Group("/seekers")
	{
		seekers.POST("/projects", handler.CreateProject)
		seekers.GET("/projects", handler.ListProjects)
		seekers.PUT("/projects/:id", handler.UpdateProject)
		seekers.DELETE("/projects/:id", handler.DeleteProject)

		seekers.POST("/experiences", handler.CreateExperience)
		seekers.GET("/experiences", handler.ListExperiences)
		seekers.PUT("/experiences/:id", handler.UpdateExperience)
		seekers.DELETE("/experiences/:id", handler.DeleteExperience)

		seekers.POST("/educations", handler.CreateEducation)
		seekers.GET("/educations", handler.ListEducations)
		seekers.PUT("/educations/:id", handler.UpdateEducation)
		seekers.DELETE("/educations/:id", handler.DeleteEducation)
	}
}

type ProjectRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description" binding:"max=2000"`
	RepoURL     string `json:"repoUrl" binding:"omitempty,url"`
	DemoURL     string `json:"demoUrl" binding:"omitempty,url"`
}

type ExperienceRequest struct {
	CompanyName string     `json:"companyName" binding:"required,max=100"`
	JobTitle    string     `json:"jobTitle" binding:"required,max=100"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description" binding:"max=2000"`
}

type EducationRequest struct {
	Institution string `json:"institution" binding:"required,max=150"`
	Degree      string `json:"degree" binding:"required,max=100"`
	Field       string `json:"field" binding:"max=100"`
	StartYear   int    `json:"startYear" binding:"required,gte=1950"`
	EndYear     *int   `json:"endYear"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// CreateProject godoc
// @Summary      Add a portfolio project
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        project  body      ProjectRequest  true  "Project JSON"
// @Success      201      {object}  response.Response
// @Router       /seekers/projects [post]
// @Security     BearerAuth
func (h *PortfolioHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	project := projectFromRequest(&req, 0)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.CreateProject(c.Request.Context(), userID, project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", project)
}

func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	projects, err := h.portfolioUC.ListProjects(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", projects)
}

func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	project := projectFromRequest(&req, id)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.UpdateProject(c.Request.Context(), userID, project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.portfolioUC.DeleteProject(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", nil)
}

func (h *PortfolioHandler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	exp := experienceFromRequest(&req, 0)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.CreateExperience(c.Request.Context(), userID, exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", exp)
}

func (h *PortfolioHandler) ListExperiences(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	exps, err := h.portfolioUC.ListExperiences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience list", exps)
}

func (h *PortfolioHandler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	exp := experienceFromRequest(&req, id)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.UpdateExperience(c.Request.Context(), userID, exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

func (h *PortfolioHandler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.portfolioUC.DeleteExperience(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

func (h *PortfolioHandler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	edu := educationFromRequest(&req, 0)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.CreateEducation(c.Request.Context(), userID, edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education created", edu)
}

func (h *PortfolioHandler) ListEducations(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	edus, err := h.portfolioUC.ListEducations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education list", edus)
}

func (h *PortfolioHandler) UpdateEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	edu := educationFromRequest(&req, id)
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.portfolioUC.UpdateEducation(c.Request.Context(), userID, edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", edu)
}

func (h *PortfolioHandler) DeleteEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.portfolioUC.DeleteEducation(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", nil)
}

func projectFromRequest(req *ProjectRequest, id int64) *domain.Project {
	return &domain.Project{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Links:       domain.ProjectLinks{Repo: req.RepoURL, Demo: req.DemoURL},
	}
}

func experienceFromRequest(req *ExperienceRequest, id int64) *domain.Experience {
	return &domain.Experience{
		ID:          id,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
}

func educationFromRequest(req *EducationRequest, id int64) *domain.Education {
	return &domain.Education{
		ID:          id,
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	}
}
