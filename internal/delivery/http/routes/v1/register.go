package v1

import (
	"gatorhire/internal/delivery/http/handler"
	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationsHandler
	SavedJobs    *handler.SavedJobsHandler
	Profile      *handler.ProfileHandler
	Health       *handler.HealthHandler
	WS           *ws.Handler
}

// Register wires every route under /api. Admin routes stack the auth
// middleware with the role gate so handlers stay policy-free.
func Register(app *fiber.App, h Handlers, auth *middleware.AuthMiddleware) {
	app.Get("/health", h.Health.Check)

	api := app.Group("/api")

	h.Auth.RegisterRoutes(api.Group("/auth"))

	requireUser := auth.Middleware()
	requireAdmin := auth.RequireRole(user.RoleAdmin)

	jobs := api.Group("/jobs")
	jobs.Get("/", h.Jobs.List)
	jobs.Get("/search", h.Jobs.Search)
	jobs.Get("/recommendations", h.Jobs.Recommendations, requireUser)
	jobs.Get("/:id", h.Jobs.Get)
	jobs.Post("/", h.Jobs.Create, requireUser, requireAdmin)
	jobs.Put("/:id", h.Jobs.Update, requireUser, requireAdmin)
	jobs.Delete("/:id", h.Jobs.Delete, requireUser, requireAdmin)
	jobs.Post("/:id/apply", h.Applications.Apply, requireUser)

	api.Get("/admin/jobs", h.Jobs.ListAdmin, requireUser, requireAdmin)

	applications := api.Group("/applications")
	applications.Get("/user", h.Applications.ListForUser, requireUser)
	applications.Get("/job", h.Applications.ListForJob, requireUser, requireAdmin)
	applications.Put("/status", h.Applications.UpdateStatus, requireUser, requireAdmin)

	saved := api.Group("/saved-jobs", requireUser)
	saved.Get("/", h.SavedJobs.List)
	saved.Post("/", h.SavedJobs.Save)
	saved.Delete("/bulk", h.SavedJobs.BulkUnsave)
	saved.Delete("/", h.SavedJobs.Unsave)

	profile := api.Group("/profile", requireUser)
	profile.Get("/", h.Profile.Get)
	profile.Put("/", h.Profile.Update)
	profile.Get("/stats", h.Profile.Stats)

	app.Get("/ws/applications", h.WS.HandleApplicationsWS, requireUser, requireAdmin)
}
