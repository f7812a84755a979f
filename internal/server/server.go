package server

import (
	"net/http"

	"bikedash/internal/config"
	"bikedash/internal/dashboard"
	"bikedash/internal/logger"
)

// Server hosts the dashboard over HTTP. All handlers are read-only; the
// loaded table inside the dashboard is shared across requests.
type Server struct {
	Config    *config.Config
	Dashboard *dashboard.Dashboard
	Log       *logger.Logger
}

// NewServer creates a server over an already constructed dashboard.
func NewServer(cfg *config.Config, dash *dashboard.Dashboard, log *logger.Logger) *Server {
	return &Server{
		Config:    cfg,
		Dashboard: dash,
		Log:       log.WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Handle specific routes first
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/dashboard", s.HandleDashboard)
	mux.HandleFunc("/charts/daily.png", s.HandleDailyPNG)

	// Handle root path last (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}
