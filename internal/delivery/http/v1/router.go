package v1

import (
	"net/http"
	"time"

	"jobdesk-backend/config"
	"jobdesk-backend/internal/delivery/http/middleware"
	"jobdesk-backend/internal/delivery/http/response"
	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	CVUC        domain.CVUsecase
	SkillUC     domain.SkillUsecase
	JobUC       domain.JobUsecase
	AppUC       domain.ApplicationUsecase
	PortfolioUC domain.PortfolioUsecase
	Tokens      *token.Manager
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeaders())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    window,
		KeyPrefix: "rl:global",
	}))

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get a tighter window on top of the global one.
	authPublic := v1.Group("")
	authPublic.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    window,
		KeyPrefix: "rl:auth",
	}))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authPublic, protected, deps.AuthUC)
		NewProfileHandler(v1, protected, deps.ProfileUC)
		NewCVHandler(protected, deps.CVUC)
		NewSkillHandler(v1, protected, deps.SkillUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.AppUC)
		NewPortfolioHandler(protected, deps.PortfolioUC)
	}

	return r
}
