package app

import (
	"gatorhire/internal/delivery/http/middleware"
	v1 "gatorhire/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// NewFiberApp assembles the HTTP surface on top of a built container. The
// error middleware is registered first so it wraps everything downstream.
func NewFiberApp(c *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	v1.Register(app, v1.Handlers{
		Auth:         c.AuthHandler,
		Jobs:         c.JobsHandler,
		Applications: c.ApplicationsHandler,
		SavedJobs:    c.SavedJobsHandler,
		Profile:      c.ProfileHandler,
		Health:       c.HealthHandler,
		WS:           c.WSHandler,
	}, c.Auth)

	return app
}
