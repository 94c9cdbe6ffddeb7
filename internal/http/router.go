package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"librarycatalog/internal/book"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/session"
	"librarycatalog/internal/view"
)

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Pages     *PageHandler
	Books     *book.HTTPHandler
	Sessions  *session.HTTPHandler
	RateLimit *httpx.RateLimitMiddleware
	Log       logrus.FieldLogger

	AllowedOrigins []string
	MaxBodyBytes   int64
	EnableHSTS     bool
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", promhttp.Handler())
	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.Static())))

	router.HandleFunc("GET /{$}", cfg.Pages.Index)
	router.HandleFunc("POST /login", cfg.Pages.Login)
	router.HandleFunc("POST /register", cfg.Pages.Register)
	router.HandleFunc("POST /logout", cfg.Pages.Logout)
	router.HandleFunc("GET /search", cfg.Pages.Search)
	router.HandleFunc("GET /search/results", cfg.Pages.SearchResults)

	router.HandleFunc("GET /api/books", cfg.Books.List)
	router.HandleFunc("GET /api/books/search", cfg.Books.Search)
	router.HandleFunc("GET /api/books/{isbn}", cfg.Books.GetByISBN)
	router.HandleFunc("POST /api/login", cfg.Sessions.Login)
	router.HandleFunc("GET /api/session", cfg.Sessions.Current)

	route := func(r *http.Request) string {
		if _, pattern := router.Handler(r); pattern != "" {
			return pattern
		}
		return "unmatched"
	}

	mws := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(cfg.Log, route),
		httpx.RecoveryMiddleware(cfg.Log),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
	}
	if cfg.RateLimit != nil {
		mws = append(mws, cfg.RateLimit.Middleware)
	}
	mws = append(mws, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes), SessionMiddleware)

	return httpx.Chain(router, mws...)
}
