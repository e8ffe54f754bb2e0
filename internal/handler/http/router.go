package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Company     CompanyHandler
	Job         JobHandler
	Application ApplicationHandler
	Payment     PaymentHandler
	Moderation  ModerationHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kaamsetu"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/verify-otp", h.Auth.VerifyOTP)
			r.Post("/resend-otp", h.Auth.ResendOTP)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Public job board
		r.Get("/jobs", h.Job.ListPublic)
		r.Get("/jobs/{jobID}", h.Job.Get)

		// Xendit callbacks authenticate with x-callback-token, not JWT
		r.Post("/payments/webhook", h.Payment.Webhook)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", h.User.GetProfile)
				r.Put("/", h.User.UpdateProfile)
				r.Delete("/", h.User.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCandidate)
					r.Post("/resume", h.User.UploadResume)
				})
			})

			r.Route("/companies/my", func(r chi.Router) {
				r.Use(middleware.RequireEmployer)
				r.Post("/", h.Company.Create)
				r.Get("/", h.Company.GetMine)
				r.Put("/documents", h.Company.UpdateDocuments)
				r.Delete("/", h.Company.Delete)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", h.Job.Create)
				r.Get("/mine", h.Job.ListMine)
				r.Post("/{jobID}/close", h.Job.Close)
				r.Delete("/{jobID}", h.Job.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCandidate)
					r.Post("/{jobID}/apply", h.Application.Apply)
					r.Post("/{jobID}/save", h.Job.Save)
					r.Delete("/{jobID}/save", h.Job.Unsave)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployer)
					r.Get("/{jobID}/applications", h.Application.ListByJob)
				})
			})

			r.Route("/applications", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCandidate)
					r.Get("/mine", h.Application.ListMine)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployer)
					r.Patch("/{applicationID}/status", h.Application.UpdateStatus)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCandidate)
				r.Get("/saved-jobs", h.Job.ListSaved)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/orders", h.Payment.CreateOrder)
				r.Get("/orders/{externalID}", h.Payment.GetOrder)
				r.Get("/credit", h.Payment.GetCredit)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/moderation/pending", h.Moderation.ListPending)
				r.Post("/moderation/decide", h.Moderation.Decide)
				r.Delete("/users/{userID}", h.User.DeleteByID)
			})
		})
	})
	return r
}
