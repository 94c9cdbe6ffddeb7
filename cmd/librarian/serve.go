package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"librarycatalog/internal/book"
	"librarycatalog/internal/catalog"
	apphttp "librarycatalog/internal/http"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/session"
	"librarycatalog/internal/view"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	sessionService := session.NewService(session.NewMemoryRepo())
	facade := catalog.NewService(book.NewMemoryRepo(a.books), catalog.WithDelay(a.cfg.FacadeDelay), catalog.WithLogger(a.log))

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	rateLimit := httpx.NewRateLimitMiddleware(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, a.cfg.TrustedProxies...)
	go rateLimit.Run(ctx)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Pages:          apphttp.NewPageHandler(facade, sessionService, renderer, a.log, a.cfg.EnableHSTS),
		Books:          book.NewHTTPHandler(facade),
		Sessions:       session.NewHTTPHandler(sessionService, facade, a.log, a.cfg.EnableHSTS),
		RateLimit:      rateLimit,
		Log:            a.log,
		AllowedOrigins: a.cfg.AllowedOrigins,
		MaxBodyBytes:   a.cfg.MaxBodyBytes,
		EnableHSTS:     a.cfg.EnableHSTS,
	})

	httpServer := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.cfg.Addr).WithField("books", len(a.books)).Info("starting server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
