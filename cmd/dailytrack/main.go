// Package main provides the dailytrack server and CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dailytrack/internal/adapter/memory"
	"dailytrack/internal/adapter/postgres"
	"dailytrack/internal/adapter/sqlite"
	"dailytrack/internal/app"
	"dailytrack/internal/config"
	"dailytrack/internal/domain"
)

var dateFlag string

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dailytrack",
		Short:         "Daily food, workout and BMI tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "day to use as YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFoodCmd())
	rootCmd.AddCommand(newWorkoutCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newBMICmd())
	rootCmd.AddCommand(newTodayCmd())
	return rootCmd
}

// backend is one storage choice behind the domain ports.
type backend struct {
	kv       domain.KeyValueStore
	users    domain.UserRepository
	sessions domain.SessionRepository
	close    func() error
}

func openBackend(cfg *config.Config) (*backend, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		db := memory.New()
		return &backend{kv: db, users: db, sessions: db.NewSessionRepo(), close: func() error { return nil }}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &backend{kv: db, users: db, sessions: postgres.NewSessionRepo(db), close: db.Close}, nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return &backend{kv: db, users: db, sessions: sqlite.NewSessionRepo(db), close: db.Close}, nil
	}
}

// services is the application layer assembled over a backend.
type services struct {
	cfg       *config.Config
	backend   *backend
	nutrition *app.NutritionService
	workouts  *app.WorkoutService
	profile   *app.ProfileService
	summary   *app.SummaryService
	auth      *app.AuthService
}

func openServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	b, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	n := app.NewNutritionService(ctx, b.kv)
	w := app.NewWorkoutService(ctx, b.kv)
	p := app.NewProfileService(ctx, b.kv, cfg.Units)
	return &services{
		cfg:       cfg,
		backend:   b,
		nutrition: n,
		workouts:  w,
		profile:   p,
		summary:   app.NewSummaryService(n, w, p),
		auth:      app.NewAuthService(b.users, b.sessions, cfg.SessionTTL).WithOwner(cfg.InitialUser),
	}, nil
}

func (s *services) Close() {
	if err := s.backend.close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
}

// withServices opens the configured storage for the duration of run.
func withServices(cmd *cobra.Command, run func(ctx context.Context, s *services, day string) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	day := ""
	if cmd.Name() != "serve" {
		day, err = domain.ParseDateKey(dateFlag, timeNow())
		if err != nil {
			return err
		}
	}
	return run(ctx, s, day)
}

func logErrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
