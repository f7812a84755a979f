package pipeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"bikedash/internal/dataset"
)

// GroupKey selects how records are grouped before reduction
type GroupKey int

const (
	// GroupNone produces a single synthetic row over all records
	GroupNone GroupKey = iota
	// GroupDay produces one row per distinct calendar day, ascending
	GroupDay
	// GroupStation produces one row per (station id, station name) pair
	GroupStation
	// GroupSeason produces one row per season present, in calendar order
	GroupSeason
)

// Reducer is a named reduction operation over a source column
type Reducer int

const (
	ReduceSum Reducer = iota
	ReduceMean
	ReduceCountDistinct
)

// Reduction names one reduced measure: Op applied to Column, stored as Name
type Reduction struct {
	Name   string
	Column string
	Op     Reducer
}

// Spec describes one aggregation pass
type Spec struct {
	GroupBy    GroupKey
	Reductions []Reduction
}

// Row is one aggregated output row: the group identity plus reduced measures.
// Only the identity fields matching the group key are populated.
type Row struct {
	Day         time.Time
	StationID   string
	StationName string
	Season      Season
	Values      map[string]float64
}

// Value returns a reduced measure by name, NaN if absent
func (r Row) Value(name string) float64 {
	if v, ok := r.Values[name]; ok {
		return v
	}
	return math.NaN()
}

// Measure reduction names shared by the standard specs below.
const (
	MeasureTrips    = "trips"
	MeasureAvgTemp  = "avgTemp"
	MeasureStations = "stations"
)

// TotalsSpec sums trips and counts distinct stations over all records
func TotalsSpec() Spec {
	return Spec{
		GroupBy: GroupNone,
		Reductions: []Reduction{
			{Name: MeasureTrips, Column: dataset.ColTrips, Op: ReduceSum},
			{Name: MeasureStations, Column: dataset.ColStationID, Op: ReduceCountDistinct},
		},
	}
}

// DailySpec sums trips and averages temperature per day
func DailySpec() Spec {
	return Spec{
		GroupBy: GroupDay,
		Reductions: []Reduction{
			{Name: MeasureTrips, Column: dataset.ColTrips, Op: ReduceSum},
			{Name: MeasureAvgTemp, Column: dataset.ColAvgTemp, Op: ReduceMean},
		},
	}
}

// StationSpec sums trips per station
func StationSpec() Spec {
	return Spec{
		GroupBy: GroupStation,
		Reductions: []Reduction{
			{Name: MeasureTrips, Column: dataset.ColTrips, Op: ReduceSum},
		},
	}
}

// SeasonalSpec sums trips and averages temperature per season
func SeasonalSpec() Spec {
	return Spec{
		GroupBy: GroupSeason,
		Reductions: []Reduction{
			{Name: MeasureTrips, Column: dataset.ColTrips, Op: ReduceSum},
			{Name: MeasureAvgTemp, Column: dataset.ColAvgTemp, Op: ReduceMean},
		},
	}
}

// accumulator collects per-group running state for every reduction
type accumulator struct {
	row      Row
	sums     map[string]float64
	counts   map[string]int
	distinct map[string]map[string]struct{}
}

// Aggregate groups the records per spec and applies the named reductions.
// Sums over zero rows are 0; means over zero rows are NaN, never zero.
func Aggregate(records []dataset.TripRecord, spec Spec) ([]Row, error) {
	for _, red := range spec.Reductions {
		if err := validateReduction(red); err != nil {
			return nil, err
		}
	}

	groups := make(map[string]*accumulator)
	var order []string

	for _, rec := range records {
		key, identity, err := groupIdentity(spec.GroupBy, rec)
		if err != nil {
			return nil, err
		}

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				row:      identity,
				sums:     make(map[string]float64),
				counts:   make(map[string]int),
				distinct: make(map[string]map[string]struct{}),
			}
			groups[key] = acc
			order = append(order, key)
		}

		for _, red := range spec.Reductions {
			accumulate(acc, red, rec)
		}
	}

	// No grouping always yields the single synthetic totals row,
	// even over an empty input.
	if spec.GroupBy == GroupNone && len(order) == 0 {
		groups[""] = &accumulator{
			sums:     make(map[string]float64),
			counts:   make(map[string]int),
			distinct: make(map[string]map[string]struct{}),
		}
		order = append(order, "")
	}

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		rows = append(rows, finalize(groups[key], spec.Reductions))
	}

	switch spec.GroupBy {
	case GroupDay:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Day.Before(rows[j].Day) })
	case GroupSeason:
		sort.SliceStable(rows, func(i, j int) bool { return seasonRank(rows[i].Season) < seasonRank(rows[j].Season) })
	}

	return rows, nil
}

// TopStations ranks station rows by a measure descending, truncates to n, then
// re-sorts the survivors ascending so a horizontal bar renders largest at top.
// Ties keep their discovery order.
func TopStations(rows []Row, n int, measure string) []Row {
	if n <= 0 {
		return []Row{}
	}

	ranked := make([]Row, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value(measure) > ranked[j].Value(measure)
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value(measure) < ranked[j].Value(measure)
	})

	return ranked
}

func validateReduction(red Reduction) error {
	switch red.Op {
	case ReduceSum, ReduceMean:
		if red.Column != dataset.ColTrips && red.Column != dataset.ColAvgTemp {
			return fmt.Errorf("reduction %q: no numeric column %q", red.Name, red.Column)
		}
	case ReduceCountDistinct:
		switch red.Column {
		case dataset.ColStationID, dataset.ColStationName, dataset.ColDate:
		default:
			return fmt.Errorf("reduction %q: no column %q", red.Name, red.Column)
		}
	default:
		return fmt.Errorf("reduction %q: unknown reducer", red.Name)
	}
	return nil
}

func groupIdentity(key GroupKey, rec dataset.TripRecord) (string, Row, error) {
	switch key {
	case GroupNone:
		return "", Row{}, nil
	case GroupDay:
		day := rec.Date
		return day.Format("2006-01-02"), Row{Day: day}, nil
	case GroupStation:
		return rec.StationID + "\x00" + rec.StationName, Row{StationID: rec.StationID, StationName: rec.StationName}, nil
	case GroupSeason:
		season, err := SeasonOf(int(rec.Date.Month()))
		if err != nil {
			return "", Row{}, err
		}
		return string(season), Row{Season: season}, nil
	default:
		return "", Row{}, fmt.Errorf("unknown group key %d", key)
	}
}

func accumulate(acc *accumulator, red Reduction, rec dataset.TripRecord) {
	switch red.Op {
	case ReduceSum, ReduceMean:
		v := numericValue(rec, red.Column)
		if math.IsNaN(v) {
			return
		}
		acc.sums[red.Name] += v
		acc.counts[red.Name]++
	case ReduceCountDistinct:
		set, ok := acc.distinct[red.Name]
		if !ok {
			set = make(map[string]struct{})
			acc.distinct[red.Name] = set
		}
		set[stringValue(rec, red.Column)] = struct{}{}
	}
}

func finalize(acc *accumulator, reductions []Reduction) Row {
	row := acc.row
	row.Values = make(map[string]float64, len(reductions))

	for _, red := range reductions {
		switch red.Op {
		case ReduceSum:
			row.Values[red.Name] = acc.sums[red.Name]
		case ReduceMean:
			if acc.counts[red.Name] == 0 {
				row.Values[red.Name] = math.NaN()
			} else {
				row.Values[red.Name] = acc.sums[red.Name] / float64(acc.counts[red.Name])
			}
		case ReduceCountDistinct:
			row.Values[red.Name] = float64(len(acc.distinct[red.Name]))
		}
	}

	return row
}

func numericValue(rec dataset.TripRecord, column string) float64 {
	switch column {
	case dataset.ColTrips:
		return float64(rec.Trips)
	case dataset.ColAvgTemp:
		return rec.AvgTemp
	default:
		return math.NaN()
	}
}

func stringValue(rec dataset.TripRecord, column string) string {
	switch column {
	case dataset.ColStationID:
		return rec.StationID
	case dataset.ColStationName:
		return rec.StationName
	case dataset.ColDate:
		return rec.Date.Format("2006-01-02")
	default:
		return ""
	}
}
