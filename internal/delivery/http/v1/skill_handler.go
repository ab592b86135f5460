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

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.List)
	protected.POST("/skills", handler.Create)

	seekers := protected.Group("/seekers")
	{
		seekers.GET("/skills", handler.ListSeekerSkills)
		seekers.PUT("/skills", handler.SetSeekerSkills)
	}
}

type SkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type SeekerSkillsRequest struct {
	SkillIDs []int64 `json:"skillIds" binding:"required"`
}

// List godoc
// @Summary      Search the skill catalog
// @Tags         skills
// @Produce      json
// @Param        q      query     string  false  "Name filter"
// @Param        limit  query     int     false  "Max results"
// @Success      200    {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	skills, err := h.skillUC.ListSkills(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	skill := &domain.Skill{Name: req.Name}
	if err := h.skillUC.CreateSkill(c.Request.Context(), skill); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", skill)
}

func (h *SkillHandler) ListSeekerSkills(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	skills, err := h.skillUC.ListSeekerSkills(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Seeker skills", skills)
}

// SetSeekerSkills godoc
// @Summary      Replace the seeker's skill set
// @Description  Clears existing links and inserts the given catalog IDs in order
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skills  body      SeekerSkillsRequest  true  "Skill IDs"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /seekers/skills [put]
// @Security     BearerAuth
func (h *SkillHandler) SetSeekerSkills(c *gin.Context) {
	var req SeekerSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	skills, err := h.skillUC.SetSeekerSkills(c.Request.Context(), userID, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", skills)
}
