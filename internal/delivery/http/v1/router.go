package v1

import (
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/session"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// votes allowed per session and rate limit window
const voteLimitPerWindow = 30

type RouterDeps struct {
	JobUC          domain.JobUsecase
	CompanyUC      domain.CompanyUsecase
	ApplicationUC  domain.ApplicationUsecase
	CandidateUC    domain.CandidateUsecase
	NotificationUC domain.NotificationUsecase
	HealthUC       usecase.HealthUsecase
	Sessions       *session.Manager
	Redis          *goredis.Client // nil keeps rate limits in memory
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := v1.Group("")
	api.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	api.Use(middleware.SessionMiddleware(deps.Sessions))
	{
		voteLimit := middleware.RateLimitMiddleware(deps.Redis, middleware.VoteRateLimitConfig(voteLimitPerWindow, window))

		NewSessionHandler(api, deps.Sessions)
		NewJobHandler(api, deps.JobUC)
		NewCompanyHandler(api, deps.CompanyUC, voteLimit)
		NewApplicationHandler(api, deps.ApplicationUC)
		NewCandidateHandler(api, deps.CandidateUC)
		NewNotificationHandler(api, deps.NotificationUC)
	}

	return r
}
