package routes

import (
	"net/http"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/auth"
	"github.com/sasha-semenenko/planetarium-api-service/internal/domes"
	"github.com/sasha-semenenko/planetarium-api-service/internal/notifications"
	"github.com/sasha-semenenko/planetarium-api-service/internal/reservations"
	"github.com/sasha-semenenko/planetarium-api-service/internal/sessions"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/database"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shows"
	"github.com/sasha-semenenko/planetarium-api-service/internal/themes"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/cache"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Services shared across route groups
	themeService themes.Service
	showService  shows.Service
	domeService  domes.Service
}

func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupThemeRoutes(api)
		r.setupDomeRoutes(api)
		r.setupShowRoutes(api)
		r.setupSessionRoutes(api)
		r.setupReservationRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "planetarium-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "planetarium-api",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupThemeRoutes(rg *gin.RouterGroup) {
	themeRepo := themes.NewRepository(r.db.GetPostgreSQL())
	r.themeService = themes.NewService(themeRepo)
	themeController := themes.NewController(r.themeService)

	themes.SetupThemeRoutes(rg, themeController)
}

func (r *Router) setupDomeRoutes(rg *gin.RouterGroup) {
	domeRepo := domes.NewRepository(r.db.GetPostgreSQL())
	r.domeService = domes.NewService(domeRepo)
	domeController := domes.NewController(r.domeService)

	domes.SetupDomeRoutes(rg, domeController)
}

func (r *Router) setupShowRoutes(rg *gin.RouterGroup) {
	showRepo := shows.NewRepository(r.db.GetPostgreSQL())
	fileStorage := storage.NewFileStorage(r.config.Upload.Path)
	r.showService = shows.NewService(showRepo, r.themeService, fileStorage)

	// Listing cache is optional; shows work without Redis
	if r.db.Redis != nil {
		r.showService.SetCacheService(cache.NewService(r.db.GetRedisClient()))
	}

	showController := shows.NewController(r.showService)
	shows.SetupShowRoutes(rg, showController)
}

func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	sessionRepo := sessions.NewRepository(r.db.GetPostgreSQL())
	sessionService := sessions.NewService(sessionRepo, r.showService, r.domeService)
	sessionController := sessions.NewController(sessionService)

	sessions.SetupSessionRoutes(rg, sessionController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	reservationService := reservations.NewService(reservationRepo)

	// Event publishing is optional; reservations work without Kafka
	if r.producer != nil {
		reservationService.SetProducer(r.producer)
	}

	reservationController := reservations.NewController(reservationService)
	reservations.SetupReservationRoutes(rg, reservationController)
}
