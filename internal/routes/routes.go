package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/handlers"
	"github.com/jobportal/jobportal-backend/internal/middleware"
	"github.com/jobportal/jobportal-backend/internal/models"
	"github.com/jobportal/jobportal-backend/internal/store"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	users store.UserStore,
	authHandler *handlers.AuthHandler,
	seekerHandler *handlers.SeekerHandler,
	employerHandler *handlers.EmployerHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public job browsing (no authentication)
	public := api.Group("/public")
	public.Get("/jobs", seekerHandler.ListJobs)
	public.Get("/jobs/:id", seekerHandler.GetJob)

	// Every gated group runs the same three-stage gate: token check,
	// account re-fetch (block takes effect immediately), role check.
	seeker := api.Group("/seeker",
		middleware.JWTProtected(cfg),
		middleware.Authenticate(users),
		middleware.RequireRole(models.RoleJobSeeker),
	)
	seeker.Put("/profile", seekerHandler.UpdateProfile)
	seeker.Get("/jobs", seekerHandler.ListJobs)
	seeker.Get("/jobs/:id", seekerHandler.GetJob)
	seeker.Post("/apply", seekerHandler.Apply)
	seeker.Get("/applied-jobs", seekerHandler.AppliedJobs)

	employer := api.Group("/employer",
		middleware.JWTProtected(cfg),
		middleware.Authenticate(users),
		middleware.RequireRole(models.RoleEmployer),
	)
	employer.Post("/jobs", employerHandler.CreateJob)
	employer.Get("/jobs", employerHandler.ListJobs)
	employer.Get("/jobs/:id", employerHandler.GetJob)
	employer.Put("/jobs/:id", employerHandler.UpdateJob)
	employer.Delete("/jobs/:id", employerHandler.DeleteJob)
	employer.Get("/jobs/:id/applicants", employerHandler.Applicants)

	admin := api.Group("/admin",
		middleware.JWTProtected(cfg),
		middleware.Authenticate(users),
		middleware.RequireRole(models.RoleAdmin),
	)
	admin.Get("/pending-employers", adminHandler.PendingEmployers)
	admin.Put("/approve-employer/:id", adminHandler.ApproveEmployer)
	admin.Delete("/reject-employer/:id", adminHandler.RejectEmployer)
	admin.Get("/jobs", adminHandler.AllJobs)
	admin.Get("/applications", adminHandler.AllApplications)
	admin.Get("/users", adminHandler.AllUsers)
	admin.Put("/toggle-block/:id", adminHandler.ToggleBlock)
}
