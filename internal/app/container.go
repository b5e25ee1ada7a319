package app

import (
	"context"
	"log"

	"gatorhire/internal/config"
	"gatorhire/internal/database"
	"gatorhire/internal/database/postgres"
	"gatorhire/internal/delivery/http/handler"
	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/infrastructure/cache"
	"gatorhire/internal/pkg/jwt"
	"gatorhire/internal/repository"
	"gatorhire/internal/usecase"
	ucauth "gatorhire/internal/usecase/auth"
	"gatorhire/internal/ws"
)

// Container owns every long-lived dependency and the handlers built on top of
// them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Auth *middleware.AuthMiddleware

	AuthHandler         *handler.AuthHandler
	JobsHandler         *handler.JobsHandler
	ApplicationsHandler *handler.ApplicationsHandler
	SavedJobsHandler    *handler.SavedJobsHandler
	ProfileHandler      *handler.ProfileHandler
	HealthHandler       *handler.HealthHandler
	WSHandler           *ws.Handler
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	savedRepo := repository.NewPostgresSavedJobRepository(db)

	authUC := ucauth.NewService(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, redisCache, logger)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, notifier)
	savedUC := usecase.NewSavedJobUsecase(savedRepo, jobRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, appRepo, savedRepo)

	return &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redisCache,
		Hub:   hub,

		Auth: middleware.NewAuthMiddleware(jwtSvc),

		AuthHandler:         handler.NewAuthHandler(authUC),
		JobsHandler:         handler.NewJobsHandler(jobUC),
		ApplicationsHandler: handler.NewApplicationsHandler(appUC),
		SavedJobsHandler:    handler.NewSavedJobsHandler(savedUC),
		ProfileHandler:      handler.NewProfileHandler(profileUC),
		HealthHandler:       handler.NewHealthHandler(db, redisCache),
		WSHandler:           ws.NewHandler(hub, logger),
	}, nil
}

func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if closer, ok := c.DB.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
