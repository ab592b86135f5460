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

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	seekers := protected.Group("/seekers")
	{
		seekers.GET("/profile", handler.GetSeekerProfile)
		seekers.PUT("/profile", handler.UpdateSeekerProfile)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/profile", handler.GetEmployerProfile)
		employers.PUT("/profile", handler.UpdateEmployerProfile)
	}

	public.GET("/employers/:id", handler.GetEmployerCard)
}

type SeekerProfileRequest struct {
	FullName  string   `json:"fullName" binding:"required,min=2,max=100"`
	Headline  string   `json:"headline" binding:"max=120"`
	Bio       string   `json:"bio" binding:"max=2000"`
	Phone     string   `json:"phone" binding:"max=30"`
	Location  string   `json:"location" binding:"max=100"`
	AvatarURL string   `json:"avatarUrl" binding:"omitempty,url"`
	Languages []string `json:"languages"`
}

type EmployerProfileRequest struct {
	CompanyName string `json:"companyName" binding:"required,min=2,max=100"`
	Website     string `json:"website" binding:"omitempty,url"`
	Industry    string `json:"industry" binding:"max=100"`
	About       string `json:"about" binding:"max=2000"`
	LogoURL     string `json:"logoUrl" binding:"omitempty,url"`
}

// GetSeekerProfile godoc
// @Summary      Get the authenticated seeker's profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /seekers/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetSeekerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetSeekerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Seeker profile", profile)
}

func (h *ProfileHandler) UpdateSeekerProfile(c *gin.Context) {
	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	profile := &domain.SeekerProfile{
		UserID:    c.GetString(string(domain.KeyUserID)),
		FullName:  req.FullName,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Location:  req.Location,
		Languages: req.Languages,
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = &req.AvatarURL
	}

	updated, err := h.profileUC.UpdateSeekerProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetEmployerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}

func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	var req EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	profile := &domain.EmployerProfile{
		UserID:      c.GetString(string(domain.KeyUserID)),
		CompanyName: req.CompanyName,
		About:       req.About,
	}
	if req.Website != "" {
		profile.Website = &req.Website
	}
	if req.Industry != "" {
		profile.Industry = &req.Industry
	}
	if req.LogoURL != "" {
		profile.LogoURL = &req.LogoURL
	}

	updated, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// GetEmployerCard godoc
// @Summary      Get an employer's public card
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Employer profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [get]
func (h *ProfileHandler) GetEmployerCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	profile, err := h.profileUC.GetEmployerCard(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer details", profile)
}
