package dashboard

import (
	"fmt"

	"bikedash/internal/dataset"
	"bikedash/internal/logger"
	"bikedash/internal/maps"
	"bikedash/internal/pipeline"
)

// Dashboard renders the reporting pages over the loaded trip table. The
// table is read-only after load and shared across requests.
type Dashboard struct {
	table       *dataset.Table
	maps        *maps.Resolver
	log         *logger.Logger
	defaultTopN int
}

// New creates a dashboard over an already loaded table.
func New(table *dataset.Table, resolver *maps.Resolver, defaultTopN int, log *logger.Logger) *Dashboard {
	return &Dashboard{
		table:       table,
		maps:        resolver,
		log:         log.WithComponent("dashboard"),
		defaultTopN: defaultTopN,
	}
}

// Normalize fills defaults and clamps the widget state against the table
// bounds so every page builder sees valid inputs.
func (d *Dashboard) Normalize(state State) State {
	state.Page = NormalizePage(state.Page)
	state.TopN = NormalizeTopN(state.TopN, d.defaultTopN)

	if state.Range.Start.IsZero() {
		state.Range.Start = d.table.MinDate
	}
	if state.Range.End.IsZero() {
		state.Range.End = d.table.MaxDate
	}
	state.Range = pipeline.NewDateRange(state.Range.Start, state.Range.End).
		Clamp(d.table.MinDate, d.table.MaxDate)

	return state
}

// Render produces the complete HTML document for the current widget state.
func (d *Dashboard) Render(state State) (string, error) {
	state = d.Normalize(state)
	records := pipeline.Filter(d.table.Records, state.Range)

	d.log.Debug("Rendering page", map[string]interface{}{
		"page": state.Page,
		"rows": len(records),
	})

	var page Page
	var err error
	switch state.Page {
	case PageIntro:
		page, err = d.introPage(records)
	case PageDaily:
		page, err = d.dailyPage(records)
	case PageStations:
		page, err = d.stationsPage(records, state)
	case PageMap:
		page = d.mapPage(state)
	case PageSeasonal:
		page, err = d.seasonalPage(records)
	case PageRecommendations:
		page = d.recommendationsPage()
	}
	if err != nil {
		return "", fmt.Errorf("failed to build %s page: %w", state.Page, err)
	}

	return d.renderShell(state, page)
}

// DailyRows returns the filtered daily aggregation for the PNG export.
func (d *Dashboard) DailyRows(state State) ([]pipeline.Row, error) {
	state = d.Normalize(state)
	records := pipeline.Filter(d.table.Records, state.Range)
	return pipeline.Aggregate(records, pipeline.DailySpec())
}
