package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liftlog/workout-server-go/internal/config"
	"github.com/liftlog/workout-server-go/internal/database"
	"github.com/liftlog/workout-server-go/internal/handler"
	"github.com/liftlog/workout-server-go/internal/middleware"
	"github.com/liftlog/workout-server-go/internal/repository"
	"github.com/liftlog/workout-server-go/internal/service"
)

type Options struct {
	Pagination      handler.Pagination
	Limiter         middleware.Limiter
	RateLimitPerMin int
	IsProduction    bool
}

// Services are the domain services behind the HTTP surface.
type Services struct {
	Exercises *service.ExerciseService
	Sessions  *service.SessionService
	Workouts  *service.WorkoutService
}

func NewServices(db *database.DB) *Services {
	exerciseRepo := repository.NewExerciseRepository(db.DB)
	sessionRepo := repository.NewSessionRepository(db.DB)
	workoutRepo := repository.NewWorkoutRepository(db.DB)

	return &Services{
		Exercises: service.NewExerciseService(exerciseRepo),
		Sessions:  service.NewSessionService(db, sessionRepo),
		Workouts:  service.NewWorkoutService(workoutRepo, sessionRepo, exerciseRepo),
	}
}

// NewRouter assembles middleware and routes for the workout API.
func NewRouter(db handler.Pinger, services *Services, opts Options) http.Handler {
	if opts.Limiter == nil {
		opts.Limiter = middleware.NewRateLimiter()
	}
	if opts.Pagination == (handler.Pagination{}) {
		opts.Pagination = handler.DefaultPagination()
	}

	exerciseHandler := handler.NewExerciseHandler(services.Exercises, opts.Pagination)
	sessionHandler := handler.NewSessionHandler(services.Sessions, services.Workouts, opts.Pagination)
	workoutHandler := handler.NewWorkoutHandler(services.Workouts, opts.Pagination)
	healthHandler := handler.NewHealthHandler(db)

	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(opts.IsProduction)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(opts.Limiter, opts.RateLimitPerMin)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(bodyLimitMiddleware.Handler)
		r.Use(securityHeadersMiddleware.Handler)
		r.Use(rateLimitMiddleware.Handler)

		r.Mount("/exercises", exerciseHandler.Routes())
		r.Mount("/sessions", sessionHandler.Routes())
		r.Mount("/workouts", workoutHandler.Routes())
	})

	return r
}
