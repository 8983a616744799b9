package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fittrack/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	workoutsService  service.WorkoutsServiceI
	goalsService     service.GoalsServiceI
	progressService  service.ProgressServiceI
	analyticsService service.AnalyticsServiceI
	chatService      service.ChatServiceI
	jwtService       JWTServiceI
	db               Pinger
}

type ServicesList struct {
	UserService      service.UserServiceI
	WorkoutsService  service.WorkoutsServiceI
	GoalsService     service.GoalsServiceI
	ProgressService  service.ProgressServiceI
	AnalyticsService service.AnalyticsServiceI
	ChatService      service.ChatServiceI
	JwtService       JWTServiceI
	DB               Pinger
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		workoutsService:  servicesOptions.WorkoutsService,
		goalsService:     servicesOptions.GoalsService,
		progressService:  servicesOptions.ProgressService,
		analyticsService: servicesOptions.AnalyticsService,
		chatService:      servicesOptions.ChatService,
		jwtService:       servicesOptions.JwtService,
		db:               servicesOptions.DB,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/users/me", s.GetMe)
			r.Delete("/users/me", s.DeleteAccount)

			r.Post("/workouts", s.CreateWorkout)
			r.Get("/workouts", s.GetWorkouts)
			r.Get("/workouts/{id}", s.GetWorkout)
			r.Put("/workouts/{id}", s.UpdateWorkout)
			r.Delete("/workouts/{id}", s.DeleteWorkout)

			r.Post("/goals", s.CreateGoal)
			r.Get("/goals", s.GetGoals)
			r.Get("/goals/{id}", s.GetGoal)
			r.Put("/goals/{id}", s.UpdateGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)

			r.Post("/progress", s.CreateProgressMetric)
			r.Get("/progress", s.GetProgressMetrics)
			r.Get("/progress/{id}", s.GetProgressMetric)
			r.Put("/progress/{id}", s.UpdateProgressMetric)
			r.Delete("/progress/{id}", s.DeleteProgressMetric)

			r.Get("/analytics/summary", s.GetSummary)
			r.Get("/analytics/streak", s.GetStreak)
			r.Get("/analytics/goals/projections", s.GetGoalProjections)
			r.Get("/analytics/export", s.ExportWorkouts)

			r.Post("/ai/chat", s.Chat)
			r.Get("/ai/tools", s.GetChatTools)
			r.Get("/ai/memory", s.GetChatMemory)
			r.Delete("/ai/memory", s.ClearChatMemory)
		})
	})
}

func (s *Server) Run(addr string) error {
	s.routes()
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.mx,
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 60,
	}
	slog.Info("server is listening", slog.String("addr", addr))
	return srv.ListenAndServe()
}
