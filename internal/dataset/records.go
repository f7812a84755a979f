package dataset

import "time"

// Column names expected in the source file.
const (
	ColDate        = "date"
	ColTrips       = "trips"
	ColAvgTemp     = "avgTemp"
	ColStationID   = "start_station_id"
	ColStationName = "start_station_name"
)

// TripRecord is one row of the source table: daily per-station trip counts
// joined with the day's average temperature.
type TripRecord struct {
	Date        time.Time
	Trips       int
	AvgTemp     float64
	StationID   string
	StationName string
}

// Table is the in-memory dataset. It is read-only after load and safe to
// share across concurrent renders.
type Table struct {
	Records []TripRecord
	MinDate time.Time
	MaxDate time.Time
}

// Empty reports whether the table holds no records
func (t *Table) Empty() bool {
	return len(t.Records) == 0
}
