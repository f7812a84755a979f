package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bikedash/internal/charts"
	"bikedash/internal/config"
	"bikedash/internal/dashboard"
	"bikedash/internal/pipeline"
)

// HandleRoot redirects the bare root to the dashboard's intro page
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Location", "/dashboard?page="+dashboard.PageIntro)
	w.WriteHeader(http.StatusFound)
}

// HandleDashboard renders the page selected by the query state
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := parseState(r)
	html, err := s.Dashboard.Render(state)
	if err != nil {
		s.Log.Error("Page render failed", err, map[string]interface{}{"page": state.Page})
		http.Error(w, "Page render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", GetContentType("dashboard.html"))
	w.Write([]byte(html))
}

// HandleDailyPNG serves the daily chart as a static PNG for the current
// date range
func (s *Server) HandleDailyPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, err := s.Dashboard.DailyRows(parseState(r))
	if err != nil {
		s.Log.Error("Daily aggregation failed", err)
		http.Error(w, "Chart data unavailable", http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "No data in the selected date range", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", GetContentType("daily.png"))
	if err := charts.RenderDailyPNG(rows, w); err != nil {
		s.Log.Error("PNG render failed", err)
	}
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"data":   "ok",
			"config": "ok",
		},
	}

	w.Header().Set("Content-Type", GetContentType("health.json"))
	json.NewEncoder(w).Encode(health)
}

// parseState reads the widget state from the query parameters. Invalid
// values are left zero; the dashboard normalizes them against its table.
func parseState(r *http.Request) dashboard.State {
	q := r.URL.Query()

	state := dashboard.State{
		Page:    q.Get("page"),
		MapFile: q.Get("map"),
	}

	if n, err := strconv.Atoi(q.Get("top")); err == nil {
		state.TopN = n
	}

	var start, end time.Time
	if t, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
		end = t
	}
	if !start.IsZero() && !end.IsZero() {
		state.Range = pipeline.NewDateRange(start, end)
	} else {
		state.Range = pipeline.DateRange{Start: start, End: end}
	}

	return state
}
