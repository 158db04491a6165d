package v1

import (
	"contact-book-backend/internal/delivery/http/middleware"
	"contact-book-backend/internal/domain"
	"contact-book-backend/internal/usecase"
	"log/slog"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	HealthUC       usecase.HealthUsecase
	PublicDir      string
	AllowedOrigins []string
	Logger         *slog.Logger
	Metrics        *metrics.Set // optional, a fresh set is used when nil
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewSet()
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins...)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", middleware.MetricsHandler(deps.Metrics))

	api := r.Group("/api")

	api.GET("/health", healthCheck(deps.HealthUC))
	NewContactHandler(api, deps.ContactUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static frontend, evaluated only after every route above
	r.NoRoute(SPAHandler(deps.PublicDir))

	return r
}
