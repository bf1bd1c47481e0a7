package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/logger"
)

type Server struct {
	mx                *chi.Mux
	srv               *http.Server
	challengesService service.ChallengesServiceI
	activitiesService service.ActivitiesServiceI
	categoriesService service.CategoriesServiceI
	metricsService    service.MetricsServiceI
	patternService    service.PatternServiceI
	jwtService        JWTServiceI
	log               *logger.Logger
}

type ServicesList struct {
	ChallengesService service.ChallengesServiceI
	ActivitiesService service.ActivitiesServiceI
	CategoriesService service.CategoriesServiceI
	MetricsService    service.MetricsServiceI
	PatternService    service.PatternServiceI
	JwtService        JWTServiceI
	Logger            *logger.Logger
}

func New(servicesOptions *ServicesList) *Server {
	lg := servicesOptions.Logger
	if lg == nil {
		lg = logger.Nop()
	}
	s := &Server{
		mx:                chi.NewMux(),
		challengesService: servicesOptions.ChallengesService,
		activitiesService: servicesOptions.ActivitiesService,
		categoriesService: servicesOptions.CategoriesService,
		metricsService:    servicesOptions.MetricsService,
		patternService:    servicesOptions.PatternService,
		jwtService:        servicesOptions.JwtService,
		log:               lg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Post("/challenges", s.CreateChallenge)
		r.Get("/challenges/active", s.GetActiveChallenge)
		r.Get("/challenges/{id}", s.GetChallenge)
		r.Patch("/challenges/{id}/status", s.UpdateChallengeStatus)

		r.Post("/categories", s.CreateCategory)
		r.Get("/categories", s.ListCategories)

		r.Post("/activities", s.LogActivity)
		r.Get("/activities", s.ListActivities)

		r.Get("/challenges/{id}/metrics", s.ListMetrics)
		r.Get("/challenges/{id}/metrics/{date}", s.GetDayMetrics)
		r.Post("/challenges/{id}/metrics/{date}", s.RecalculateDay)
		r.Patch("/challenges/{id}/metrics/{date}/reflection", s.UpdateReflection)

		r.Get("/challenges/{id}/patterns", s.ListPatterns)
		r.Post("/challenges/{id}/patterns", s.DetectPatterns)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("api server started", "address", addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
