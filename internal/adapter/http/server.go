package adapthttp

import (
	"net/http"
	"time"

	"dailytrack/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	nutrition *app.NutritionService
	workouts  *app.WorkoutService
	profile   *app.ProfileService
	summary   *app.SummaryService
	authSvc   *app.AuthService
	webDir    string

	oidcConfig      OIDCConfig
	disableAuth     bool
	trustRemoteUser bool
	now             func() time.Time
}

// New creates a Server wired to the given application services.
func New(n *app.NutritionService, w *app.WorkoutService, p *app.ProfileService, sum *app.SummaryService, authSvc *app.AuthService, webDir string) *Server {
	return &Server{
		nutrition: n,
		workouts:  w,
		profile:   p,
		summary:   sum,
		authSvc:   authSvc,
		webDir:    webDir,
		now:       time.Now,
	}
}

// WithoutAuth disables session checks on API routes.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithRemoteUser accepts the Remote-User header set by a trusted
// authenticating proxy.
func (s *Server) WithRemoteUser() *Server {
	s.trustRemoteUser = true
	return s
}

// WithOIDC enables single sign-on.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/auth/me", s.handleMe)
	protected.HandleFunc("/entries", s.handleEntries)
	protected.HandleFunc("/workouts", s.handleWorkouts)
	protected.HandleFunc("/profile", s.handleProfile)
	protected.HandleFunc("/bmi", s.handleBMI)
	protected.HandleFunc("/summary", s.handleSummary)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
