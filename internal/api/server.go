package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/kakune/internal/service"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	itemsService    service.ItemsServiceI
	checkInsService service.CheckInsServiceI
	historyService  service.HistoryServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	ItemsService    service.ItemsServiceI
	CheckInsService service.CheckInsServiceI
	HistoryService  service.HistoryServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		itemsService:    servicesOptions.ItemsService,
		checkInsService: servicesOptions.CheckInsService,
		historyService:  servicesOptions.HistoryService,
		jwtService:      servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)
			r.Get("/home", s.Home)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", s.ListItems)
				r.Post("/", s.CreateItem)
				r.Put("/order", s.ReorderItems)
				r.Patch("/{id}", s.UpdateItem)
				r.Delete("/{id}", s.DeleteItem)
				r.Post("/{id}/archive", s.ArchiveItem)
				r.Post("/{id}/checkins", s.RecordCheckIn)
				r.Get("/{id}/today", s.TodayLog)
			})

			r.Route("/history", func(r chi.Router) {
				r.Get("/calendar", s.Calendar)
				r.Get("/series", s.Series)
				r.Get("/summary", s.Summary)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down api server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutdown error: " + err.Error())
	}
	return nil
}
