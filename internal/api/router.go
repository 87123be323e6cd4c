package api

import (
	"database/sql"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crmdesk/crm-system/internal/api/handler"
	"github.com/crmdesk/crm-system/internal/api/middleware"
	"github.com/crmdesk/crm-system/internal/core/service"
	"github.com/crmdesk/crm-system/internal/infrastructure/config"
	mongoauth "github.com/crmdesk/crm-system/internal/infrastructure/db/mongo"
	"github.com/crmdesk/crm-system/internal/infrastructure/db/postgres"
	redisdb "github.com/crmdesk/crm-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, mdb *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SessionSecret))))

	// --- Dependencies ---
	recordRepo := postgres.NewRecordRepository(db)
	recordService := service.NewRecordService(recordRepo, log)
	recordHandler := handler.NewRecordHandler(recordService)

	authRepo := mongoauth.NewAuthRepository(mdb)
	revoker := redisdb.NewRevocationStore(rdb)
	authService := service.NewAuthService(authRepo, revoker, cfg.JWTSecret, 24*time.Hour, log)
	authHandler := handler.NewAuthHandler(authService)

	e.Use(middleware.Identify(cfg.JWTSecret, revoker))
	requireLogin := middleware.Auth()

	// --- Pages ---
	e.GET("/", recordHandler.Home)
	e.POST("/", authHandler.Login)
	e.GET("/logout/", authHandler.Logout)
	e.GET("/register/", authHandler.RegisterForm)
	e.POST("/register/", authHandler.Register)

	e.GET("/record/:id", recordHandler.View, requireLogin)
	e.GET("/add_record/", recordHandler.AddForm, requireLogin)
	e.POST("/add_record/", recordHandler.Add, requireLogin)
	e.GET("/update_record/:id", recordHandler.UpdateForm, requireLogin)
	e.POST("/update_record/:id", recordHandler.Update, requireLogin)
	e.GET("/delete_record/:id", recordHandler.Delete, requireLogin)
	e.POST("/delete_record/:id", recordHandler.Delete, requireLogin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, mdb, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
