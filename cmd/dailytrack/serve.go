package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapthttp "dailytrack/internal/adapter/http"
	"dailytrack/internal/app"
	"dailytrack/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, runServe)
		},
	}
}

func runServe(ctx context.Context, s *services, _ string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := s.cfg
	if cfg.InitialUser != "" {
		err := s.auth.CreateInitialUser(ctx, cfg.InitialUser, cfg.InitialPassword)
		switch {
		case err == nil:
			log.Printf("created initial user %q", cfg.InitialUser)
		case errors.Is(err, app.ErrUsersExist):
		default:
			return err
		}
	}

	if st := s.nutrition.LoadStatus(); st != app.LoadOK {
		log.Printf("food journal: %s", st)
	}
	if st := s.workouts.LoadStatus(); st != app.LoadOK {
		log.Printf("workout journal: %s", st)
	}

	srv := adapthttp.New(s.nutrition, s.workouts, s.profile, s.summary, s.auth, cfg.WebDir)
	if cfg.DisableAuth {
		log.Printf("authentication disabled")
		srv = srv.WithoutAuth()
	}
	if cfg.TrustRemoteUser {
		srv = srv.WithRemoteUser()
	}
	if cfg.OIDCEnabled() {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			return err
		}
		srv = srv.WithOIDC(oidcCfg)
	}

	sched := scheduler.New()
	err := sched.Add("prune-sessions", cfg.SessionPruneSpec, func(ctx context.Context) error {
		n, err := s.auth.PruneExpired(ctx)
		if err == nil && n > 0 {
			log.Printf("pruned %d expired session(s)", n)
		}
		return err
	})
	if err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (storage: %s)", cfg.Addr, cfg.Storage)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
