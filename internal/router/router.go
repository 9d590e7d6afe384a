// Package router assembles the HTTP surface of the Poseidon API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"poseidon/internal/authz"
	"poseidon/internal/config"
	"poseidon/internal/handlers"
	"poseidon/internal/metrics"
	"poseidon/internal/middleware"
	"poseidon/internal/password"
	"poseidon/internal/services"
	"poseidon/internal/validator"

	_ "poseidon/internal/docs" // swagger docs
)

// Services bundles the business services behind the routes.
type Services struct {
	BidList    services.BidListServicer
	CurvePoint services.CurvePointServicer
	Rating     services.RatingServicer
	RuleName   services.RuleNameServicer
	Trade      services.TradeServicer
	User       services.UserServicer
	Audit      services.AuditServicer
}

// NewServices wires every service to db.
func NewServices(db *gorm.DB, cfg *config.Config) Services {
	return Services{
		BidList:    services.NewBidListService(db),
		CurvePoint: services.NewCurvePointService(db),
		Rating:     services.NewRatingService(db),
		RuleName:   services.NewRuleNameService(db),
		Trade:      services.NewTradeService(db),
		User:       services.NewUserService(db, password.NewBcryptEncoder(cfg.BcryptCost)),
		Audit:      services.NewAuditService(db),
	}
}

// New builds the Gin engine.
func New(cfg *config.Config, svc Services) *gin.Engine {
	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.APIKeyGuard(cfg.MetricsAPIKey), gin.WrapH(metrics.Handler()))

	authHandler := handlers.NewAuthHandler(svc.User, svc.Audit)
	userHandler := handlers.NewUserHandler(svc.User, svc.Audit)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	v1 := router.Group("/api/v1")

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerSec, cfg.LoginRateBurst)
	v1.POST("/auth/login", loginLimiter.Handler(), authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)

	handlers.NewBidListHandler(svc.BidList, svc.Audit).Register(protected.Group("/bid-lists"))
	handlers.NewCurvePointHandler(svc.CurvePoint, svc.Audit).Register(protected.Group("/curve-points"))
	handlers.NewRatingHandler(svc.Rating, svc.Audit).Register(protected.Group("/ratings"))
	handlers.NewRuleNameHandler(svc.RuleName, svc.Audit).Register(protected.Group("/rule-names"))
	handlers.NewTradeHandler(svc.Trade, svc.Audit).Register(protected.Group("/trades"))

	admin := protected.Group("/")
	admin.Use(middleware.RequireRole(authz.RoleAdmin))
	userHandler.Register(admin.Group("/users"))
	admin.GET("/audit-logs", auditHandler.List)

	return router
}
