package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"venue-booking-web/internal/handler/httperr"
	"venue-booking-web/internal/pkg/config"

	"github.com/gorilla/csrf"
)

const csrfFailureMessage = "Your form expired. Go back, reload the page and try again."

// NewCSRF wraps the router with token checks on every unsafe method.
// Forms carry the token through the CSRF field that pages render.
func NewCSRF(cfg config.Config, templates *template.Template, logger *slog.Logger) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		[]byte(cfg.CSRF.AuthKey),
		csrf.Secure(cfg.CSRF.Secure),
		csrf.Path("/"),
		csrf.SameSite(sameSite(cfg.Cookie.SameSite)),
		csrf.ErrorHandler(csrfFailure(templates, logger)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if cfg.CSRF.Secure {
			return protected
		}
		// Without TLS the origin check must not demand an https Referer.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func csrfFailure(templates *template.Template, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("CSRF check failed",
			"method", r.Method,
			"path", r.URL.Path,
			"reason", csrf.FailureReason(r),
		)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		resp := httperr.Response{Status: http.StatusForbidden, Message: csrfFailureMessage}
		if err := templates.ExecuteTemplate(w, httperr.Template, resp); err != nil {
			logger.Error("failed to render CSRF error page", "error", err)
		}
	})
}

func sameSite(v string) csrf.SameSiteMode {
	switch v {
	case "Strict":
		return csrf.SameSiteStrictMode
	case "None":
		return csrf.SameSiteNoneMode
	default:
		return csrf.SameSiteLaxMode
	}
}
