package routes

import (
	"log"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/jwt"
	"jobtrack/internal/repository"
	"jobtrack/internal/usecase"
	ucauth "jobtrack/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app. The auth
// endpoints sit behind the rate limiter; everything under /jobs and the
// profile update sit behind the auth gate.
func Register(app *fiber.App, cfg config.Config, db database.DB, counter middleware.Counter, logger *log.Logger) {
	if app == nil {
		return
	}

	handler.NewHealthHandler().RegisterRoutes(app)

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Lifetime)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	limiter := middleware.NewRateLimitMiddleware(counter, cfg.RateLimit, logger)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(userRepo), jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, logger)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(jobUC)

	v1 := app.Group("/api").Group("/v1")

	// Group-level registration so the middleware runs ahead of the handlers;
	// route-level variadic handlers execute after the main handler in fiber v3.
	authGroup := v1.Group("/auth")
	limited := authGroup.Group("", limiter.Middleware())
	limited.Post("/register", authHandler.Register)
	limited.Post("/login", authHandler.Login)

	profile := authGroup.Group("", authMw.Middleware())
	profile.Patch("/updateUser", authHandler.UpdateUser)

	jobsGroup := v1.Group("/jobs", authMw.Middleware())
	jobsGroup.Get("/", jobsHandler.List)
	jobsGroup.Post("/", jobsHandler.Create)
	jobsGroup.Get("/stats", jobsHandler.Stats)
	jobsGroup.Get("/:id", jobsHandler.Get)
	jobsGroup.Patch("/:id", jobsHandler.Update)
	jobsGroup.Delete("/:id", jobsHandler.Delete)
}
