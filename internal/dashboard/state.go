package dashboard

import (
	"bikedash/internal/pipeline"
)

// Page names as they appear in the page query parameter.
const (
	PageIntro           = "intro"
	PageDaily           = "daily"
	PageStations        = "stations"
	PageMap             = "map"
	PageSeasonal        = "seasonal"
	PageRecommendations = "recommendations"
)

// Top-N selector bounds.
const (
	TopNMin  = 10
	TopNMax  = 50
	TopNStep = 5
)

// NavEntry is one sidebar navigation item.
type NavEntry struct {
	Name  string
	Label string
}

// NavPages lists the six pages in sidebar order.
var NavPages = []NavEntry{
	{PageIntro, "Intro"},
	{PageDaily, "Daily Trips vs Temperature"},
	{PageStations, "Most Popular Stations"},
	{PageMap, "Interactive Map"},
	{PageSeasonal, "Extra Insight (Seasonality)"},
	{PageRecommendations, "Recommendations"},
}

// State is the widget state for one render: the selected page, the date
// range filter, the station ranking size and the chosen map file.
type State struct {
	Page    string
	Range   pipeline.DateRange
	TopN    int
	MapFile string
}

// NormalizePage maps unknown page names to the intro page.
func NormalizePage(name string) string {
	for _, p := range NavPages {
		if p.Name == name {
			return name
		}
	}
	return PageIntro
}

// NormalizeTopN clamps n into the selector range and snaps it to the
// selector step; out-of-band values fall back to the configured default.
func NormalizeTopN(n, fallback int) int {
	if n == 0 {
		n = fallback
	}
	if n < TopNMin {
		return TopNMin
	}
	if n > TopNMax {
		return TopNMax
	}
	return n - (n-TopNMin)%TopNStep
}

// TopNOptions returns the selectable values for the station ranking size.
func TopNOptions() []int {
	var out []int
	for n := TopNMin; n <= TopNMax; n += TopNStep {
		out = append(out, n)
	}
	return out
}
