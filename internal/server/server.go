package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fittrack/apiserver/config"
	"github.com/fittrack/apiserver/internal/auth"
	"github.com/fittrack/apiserver/internal/db"
	"github.com/fittrack/apiserver/internal/handlers"
	"github.com/fittrack/apiserver/internal/services"
	"github.com/fittrack/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and every route wired.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	codec, err := auth.NewCodec(cfg.Auth.Secret, cfg.Auth.Algorithm, time.Duration(cfg.Auth.TokenTTL)*time.Second)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	categoryRepo := store.NewCategoryRepository(dbConn)
	muscleGroupRepo := store.NewMuscleGroupRepository(dbConn)
	exerciseRepo := store.NewExerciseRepository(dbConn)
	workoutRepo := store.NewWorkoutRepository(dbConn)
	workoutPlanRepo := store.NewWorkoutPlanRepository(dbConn)

	maxLimit := cfg.Pagination.MaxLimit
	userService := services.NewUserService(userRepo, codec, maxLimit)
	categoryService := services.NewCategoryService(categoryRepo, maxLimit)
	muscleGroupService := services.NewMuscleGroupService(muscleGroupRepo, maxLimit)
	exerciseService := services.NewExerciseService(exerciseRepo, maxLimit)
	workoutService := services.NewWorkoutService(workoutRepo, maxLimit)
	workoutPlanService := services.NewWorkoutPlanService(workoutPlanRepo, maxLimit)

	authMiddleware := handlers.RequireAuth(codec)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, authMiddleware)
	})
	router.Route("/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, authMiddleware)
	})
	router.Route("/categories", func(r chi.Router) {
		handlers.CategoryRouter(r, categoryService)
	})
	router.Route("/muscle-groups", func(r chi.Router) {
		handlers.MuscleGroupRouter(r, muscleGroupService)
	})
	router.Route("/exercises", func(r chi.Router) {
		handlers.ExerciseRouter(r, exerciseService)
	})
	router.Route("/workouts", func(r chi.Router) {
		handlers.WorkoutRouter(r, workoutService, authMiddleware)
	})
	router.Route("/workout-plans", func(r chi.Router) {
		handlers.WorkoutPlanRouter(r, workoutPlanService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
