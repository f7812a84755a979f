package dataset

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikedash/internal/logger"
)

// ErrDataUnavailable indicates the source file is missing or unreadable.
// This is fatal for the whole dashboard: no page renders without data.
var ErrDataUnavailable = errors.New("dataset unavailable")

// dateLayouts are tried in order when normalizing the date column
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

const loaderCacheSize = 4

// Loader reads the dataset file into a Table, memoized per path for the
// lifetime of the process.
type Loader struct {
	cache gcache.Cache
	log   *logger.Logger
}

// NewLoader creates a loader with an LRU cache keyed by file path
func NewLoader(log *logger.Logger) *Loader {
	return NewLoaderWithCache(log, gcache.New(loaderCacheSize).LRU().Build())
}

// NewLoaderWithCache creates a loader backed by the given cache. Tests inject
// their own cache here instead of relying on process-global state.
func NewLoaderWithCache(log *logger.Logger, cache gcache.Cache) *Loader {
	return &Loader{
		cache: cache,
		log:   log.WithComponent("dataset"),
	}
}

// Load returns the table for path, reading from disk at most once per path
func (l *Loader) Load(path string) (*Table, error) {
	if cached, err := l.cache.Get(path); err == nil {
		if table, ok := cached.(*Table); ok {
			return table, nil
		}
	}

	table, err := l.readTable(path)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(path, table); err != nil {
		l.log.Warn("failed to cache dataset", map[string]interface{}{"path": path})
	}

	return table, nil
}

// readTable reads and normalizes the dataset file
func (l *Loader) readTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			ColDate:        series.String,
			ColTrips:       series.Int,
			ColAvgTemp:     series.Float,
			ColStationID:   series.String,
			ColStationName: series.String,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, df.Err)
	}

	for _, col := range []string{ColDate, ColTrips, ColAvgTemp, ColStationID, ColStationName} {
		if !hasColumn(df, col) {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrDataUnavailable, path, col)
		}
	}

	dates := df.Col(ColDate)
	trips := df.Col(ColTrips)
	temps := df.Col(ColAvgTemp)
	ids := df.Col(ColStationID)
	names := df.Col(ColStationName)

	table := &Table{Records: make([]TripRecord, 0, df.Nrow())}
	dropped := 0

	for i := 0; i < df.Nrow(); i++ {
		date, ok := parseDate(dates.Elem(i).String())
		if !ok {
			// unparseable dates are a data-quality drop, not an error
			dropped++
			continue
		}

		tripCount, err := trips.Elem(i).Int()
		if err != nil {
			dropped++
			continue
		}

		table.Records = append(table.Records, TripRecord{
			Date:        date,
			Trips:       tripCount,
			AvgTemp:     temps.Elem(i).Float(),
			StationID:   ids.Elem(i).String(),
			StationName: names.Elem(i).String(),
		})

		if table.MinDate.IsZero() || date.Before(table.MinDate) {
			table.MinDate = date
		}
		if date.After(table.MaxDate) {
			table.MaxDate = date
		}
	}

	l.log.Info("dataset loaded", map[string]interface{}{
		"path":    path,
		"rows":    len(table.Records),
		"dropped": dropped,
	})

	return table, nil
}

// parseDate normalizes a raw date string to a UTC calendar day
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}
