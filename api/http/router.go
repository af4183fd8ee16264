package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"jobportal/api/http/handlers"
)

// Handlers groups everything the router needs to wire.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Resume       *handlers.ResumeHandler
	Job          *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	SavedJobs    *handlers.SavedJobHandler
	Admin        *handlers.AdminHandler
	Health       *handlers.HealthHandler
}

// Register wires all HTTP routes onto the given Fiber app. protect is the JWT
// middleware applied to routes that require an authenticated user.
func Register(app *fiber.App, h Handlers, protect fiber.Handler) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	users := v1.Group("/users", protect)
	users.Get("/me", h.User.Me)
	users.Put("/me", h.User.UpdateMe)

	// Static routes must come before the :id wildcard.
	jobs := v1.Group("/jobs")
	jobs.Get("/", h.Job.List)
	jobs.Get("/recommended", protect, h.Job.Recommended)
	jobs.Get("/employer", protect, h.Job.ListEmployer)
	jobs.Post("/", protect, h.Job.Create)
	jobs.Get("/:id", h.Job.GetByID)
	jobs.Put("/:id", protect, h.Job.Update)
	jobs.Delete("/:id", protect, h.Job.Delete)
	jobs.Put("/:id/toggle-close", protect, h.Job.ToggleClose)

	res := v1.Group("/resume", protect)
	res.Post("/upload", h.Resume.Upload)
	res.Get("/me", h.Resume.Me)

	apps := v1.Group("/applications", protect)
	apps.Get("/my", h.Applications.ListMine)
	apps.Get("/job/:jobId", h.Applications.ListByJob)
	apps.Post("/:jobId", h.Applications.Apply)
	apps.Put("/:id/status", h.Applications.UpdateStatus)

	saved := v1.Group("/saved-jobs", protect)
	saved.Get("/my", h.SavedJobs.ListMine)
	saved.Post("/:jobId", h.SavedJobs.Save)
	saved.Delete("/:jobId", h.SavedJobs.Unsave)

	adm := v1.Group("/admin", protect)
	adm.Get("/stats", h.Admin.GetStats)
	adm.Get("/candidates", h.Admin.ListCandidates)
	adm.Put("/candidates/:id/active", h.Admin.SetCandidateActive)
	adm.Delete("/candidates/:id", h.Admin.DeleteCandidate)
	adm.Get("/employers", h.Admin.ListEmployers)
	adm.Put("/employers/:id/block", h.Admin.SetEmployerBlocked)
	adm.Get("/jobs", h.Admin.ListJobs)
	adm.Put("/jobs/:id/approve", h.Admin.SetJobApproved)
}
