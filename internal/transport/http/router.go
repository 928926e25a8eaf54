package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uni-match-api/internal/application/auth"
	"github.com/uni-match-api/internal/application/catalog"
	"github.com/uni-match-api/internal/application/match"
	"github.com/uni-match-api/internal/application/profile"
	"github.com/uni-match-api/internal/application/verification"
	"github.com/uni-match-api/internal/config"
	"github.com/uni-match-api/internal/transport/http/handler"
	appmiddleware "github.com/uni-match-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the public OTP endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	// Typed-nil guard: a missing provider must stay a nil interface.
	var signer auth.CredentialSigner
	if deps.JWTProvider != nil {
		signer = deps.JWTProvider
	}

	authSvc := auth.NewService(auth.ServiceDeps{
		Store:          deps.OTPStore,
		Mailer:         deps.Mailer,
		Signer:         signer,
		AllowedDomains: cfg.OTPAllowedDomains,
		Expiry:         cfg.OTPExpiry,
		MaxAttempts:    cfg.OTPMaxAttempts,
	})
	profileSvc := profile.NewService(deps.ProfileRepo, deps.UniversityRepo)
	matchSvc := match.NewService(deps.ProfileRepo)
	catalogSvc := catalog.NewService(deps.UniversityRepo, deps.ConfigurationRepo)
	verificationSvc := verification.NewService(deps.S3Store, deps.DocumentRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	matchH := handler.NewMatchHandler(matchSvc, profileSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	verificationH := handler.NewVerificationHandler(verificationSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/email/request", authH.RequestOtp)
		r.With(sensitiveRL.Limit).Post("/auth/email/verify", authH.VerifyOtp)
		r.Get("/catalog/universities", catalogH.ListUniversities)
		r.Get("/catalog/configuration", catalogH.GetConfiguration)

		// ── Verified-email routes ────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/matches/candidates", matchH.Candidates)
			r.Get("/profile", profileH.Get)
			r.Post("/profile", profileH.Create)
			r.Put("/profile", profileH.Update)
			r.Post("/verification/student-id", verificationH.Upload)
			r.Get("/verification/documents", verificationH.List)
			r.Get("/verification/documents/{documentID}", verificationH.Download)
			r.Delete("/verification/documents/{documentID}", verificationH.Delete)
		})
	})

	return r
}
