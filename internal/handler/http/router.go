package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/middleware"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	User     UserHandler
	Employee EmployeeHandler
	Absence  AbsenceHandler
	SyncLog  SyncLogHandler
	Config   ConfigHandler
}

func NewRouter(jwtService jwt.Service, corsOrigin string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vitalis-care"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Get("/profile", h.Auth.Profile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/users", func(r chi.Router) {
				r.Put("/profile", h.User.UpdateProfile)
				r.Put("/subscription", h.User.UpdateSubscription)
			})

			// Tenant-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.CompanyRequired)

				r.Route("/funcionarios", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Post("/sync", h.Employee.Sync)
				})

				r.Route("/absenteismo", func(r chi.Router) {
					r.Get("/", h.Absence.List)
					r.Get("/stats", h.Absence.Stats)
					r.Post("/sync", h.Absence.Sync)
				})

				r.Route("/sync", func(r chi.Router) {
					r.Get("/", h.SyncLog.List)
					r.Get("/{id}", h.SyncLog.Get)
				})

				r.Route("/config", func(r chi.Router) {
					r.Get("/", h.Config.Get)
					r.Post("/", h.Config.Save)
				})
			})
		})
	})
	return r
}
