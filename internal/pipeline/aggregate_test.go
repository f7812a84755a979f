package pipeline

import (
	"math"
	"testing"

	"bikedash/internal/dataset"
)

func TestAggregateTotals(t *testing.T) {
	rows, err := Aggregate(sampleRecords(), TotalsSpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected single totals row, got %d", len(rows))
	}

	if got := rows[0].Value(MeasureTrips); got != 110 {
		t.Errorf("expected trip sum 110, got %v", got)
	}
	if got := rows[0].Value(MeasureStations); got != 3 {
		t.Errorf("expected 3 distinct stations, got %v", got)
	}
}

func TestAggregateTotalsEmptyInput(t *testing.T) {
	rows, err := Aggregate(nil, TotalsSpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected synthetic totals row over empty input, got %d rows", len(rows))
	}
	if got := rows[0].Value(MeasureTrips); got != 0 {
		t.Errorf("sum over zero rows should be 0, got %v", got)
	}
	if got := rows[0].Value(MeasureStations); got != 0 {
		t.Errorf("distinct count over zero rows should be 0, got %v", got)
	}
}

func TestAggregateByDay(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 7, 10), Trips: 30, AvgTemp: 27.0, StationID: "S2", StationName: "Union Square"},
		{Date: day(2023, 1, 5), Trips: 10, AvgTemp: 2.0, StationID: "S1", StationName: "Central Park"},
		{Date: day(2023, 7, 10), Trips: 20, AvgTemp: 29.0, StationID: "S1", StationName: "Central Park"},
	}

	rows, err := Aggregate(records, DailySpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 day rows, got %d", len(rows))
	}

	// ascending by day
	if !rows[0].Day.Equal(day(2023, 1, 5)) || !rows[1].Day.Equal(day(2023, 7, 10)) {
		t.Errorf("rows not ascending by day: %v, %v", rows[0].Day, rows[1].Day)
	}

	if got := rows[1].Value(MeasureTrips); got != 50 {
		t.Errorf("expected July 10 trips 50, got %v", got)
	}
	if got := rows[1].Value(MeasureAvgTemp); got != 28.0 {
		t.Errorf("expected July 10 mean temp 28.0, got %v", got)
	}

	// per-day sums add up to the overall sum
	total := 0.0
	for _, row := range rows {
		total += row.Value(MeasureTrips)
	}
	if total != 60 {
		t.Errorf("per-day sums %v do not equal overall sum 60", total)
	}
}

func TestAggregateBySeasonFixedOrder(t *testing.T) {
	// deliberately out of calendar order
	records := []dataset.TripRecord{
		{Date: day(2023, 7, 10), Trips: 50, AvgTemp: 28.0, StationID: "S1", StationName: "Central Park"},
		{Date: day(2023, 1, 5), Trips: 10, AvgTemp: 2.0, StationID: "S1", StationName: "Central Park"},
	}

	rows, err := Aggregate(records, SeasonalSpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 season rows, got %d", len(rows))
	}

	if rows[0].Season != Winter || rows[1].Season != Summer {
		t.Fatalf("seasons out of calendar order: %s, %s", rows[0].Season, rows[1].Season)
	}
	if got := rows[0].Value(MeasureTrips); got != 10 {
		t.Errorf("winter trips = %v, want 10", got)
	}
	if got := rows[0].Value(MeasureAvgTemp); got != 2.0 {
		t.Errorf("winter avgTemp = %v, want 2.0", got)
	}
	if got := rows[1].Value(MeasureTrips); got != 50 {
		t.Errorf("summer trips = %v, want 50", got)
	}
	if got := rows[1].Value(MeasureAvgTemp); got != 28.0 {
		t.Errorf("summer avgTemp = %v, want 28.0", got)
	}
}

func TestAggregateAbsentSeasonsNotSynthesized(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 4, 1), Trips: 5, AvgTemp: 12.0, StationID: "S1", StationName: "Central Park"},
	}

	rows, err := Aggregate(records, SeasonalSpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Season != Spring {
		t.Errorf("expected only spring, got %+v", rows)
	}
}

func TestAggregateMeanSkipsNaN(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 1, 5), Trips: 10, AvgTemp: math.NaN(), StationID: "S1", StationName: "Central Park"},
		{Date: day(2023, 1, 5), Trips: 5, AvgTemp: 4.0, StationID: "S2", StationName: "Union Square"},
	}

	rows, err := Aggregate(records, DailySpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if got := rows[0].Value(MeasureAvgTemp); got != 4.0 {
		t.Errorf("mean should skip NaN inputs, got %v", got)
	}
}

func TestAggregateMeanOverZeroRowsIsNaN(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 1, 5), Trips: 10, AvgTemp: math.NaN(), StationID: "S1", StationName: "Central Park"},
	}

	rows, err := Aggregate(records, DailySpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	if got := rows[0].Value(MeasureAvgTemp); !math.IsNaN(got) {
		t.Errorf("mean with no valid inputs must be NaN, got %v", got)
	}
	if got := rows[0].Value(MeasureTrips); got != 10 {
		t.Errorf("sum unaffected by NaN temps, got %v", got)
	}
}

func TestAggregateUnknownColumn(t *testing.T) {
	spec := Spec{
		GroupBy:    GroupDay,
		Reductions: []Reduction{{Name: "x", Column: "wind_speed", Op: ReduceSum}},
	}
	if _, err := Aggregate(sampleRecords(), spec); err == nil {
		t.Fatal("expected error for unknown source column")
	}
}

func stationRows(t *testing.T, records []dataset.TripRecord) []Row {
	t.Helper()
	rows, err := Aggregate(records, StationSpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}
	return rows
}

func TestTopStations(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 1, 1), Trips: 100, AvgTemp: 5, StationID: "A", StationName: "Alpha"},
		{Date: day(2023, 1, 2), Trips: 300, AvgTemp: 5, StationID: "B", StationName: "Bravo"},
		{Date: day(2023, 1, 3), Trips: 200, AvgTemp: 5, StationID: "C", StationName: "Charlie"},
	}

	top := TopStations(stationRows(t, records), 2, MeasureTrips)
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}

	// top-2 by descending trips is {B:300, C:200}, re-sorted ascending → [C, B]
	if top[0].StationID != "C" || top[1].StationID != "B" {
		t.Errorf("expected [C, B], got [%s, %s]", top[0].StationID, top[1].StationID)
	}
	if top[0].Value(MeasureTrips) != 200 || top[1].Value(MeasureTrips) != 300 {
		t.Errorf("unexpected trip values: %v, %v", top[0].Value(MeasureTrips), top[1].Value(MeasureTrips))
	}
}

func TestTopStationsNLargerThanStations(t *testing.T) {
	rows := stationRows(t, sampleRecords())
	top := TopStations(rows, 50, MeasureTrips)
	if len(top) != len(rows) {
		t.Errorf("expected min(N, stations) = %d rows, got %d", len(rows), len(top))
	}

	// maximum element is the true per-station maximum
	maxTrips := top[len(top)-1].Value(MeasureTrips)
	for _, row := range rows {
		if row.Value(MeasureTrips) > maxTrips {
			t.Errorf("ranking missed station %s with %v trips", row.StationID, row.Value(MeasureTrips))
		}
	}

	// ascending for display
	for i := 1; i < len(top); i++ {
		if top[i].Value(MeasureTrips) < top[i-1].Value(MeasureTrips) {
			t.Error("top stations not ascending by trips")
		}
	}
}

func TestTopStationsNonPositiveN(t *testing.T) {
	rows := stationRows(t, sampleRecords())
	for _, n := range []int{0, -1, -20} {
		top := TopStations(rows, n, MeasureTrips)
		if len(top) != 0 {
			t.Errorf("TopStations(rows, %d) returned %d rows, want 0", n, len(top))
		}
	}
}

func TestTopStationsStableTies(t *testing.T) {
	records := []dataset.TripRecord{
		{Date: day(2023, 1, 1), Trips: 100, AvgTemp: 5, StationID: "A", StationName: "Alpha"},
		{Date: day(2023, 1, 1), Trips: 100, AvgTemp: 5, StationID: "B", StationName: "Bravo"},
		{Date: day(2023, 1, 1), Trips: 100, AvgTemp: 5, StationID: "C", StationName: "Charlie"},
	}

	top := TopStations(stationRows(t, records), 3, MeasureTrips)
	if top[0].StationID != "A" || top[1].StationID != "B" || top[2].StationID != "C" {
		t.Errorf("ties must preserve discovery order, got [%s, %s, %s]",
			top[0].StationID, top[1].StationID, top[2].StationID)
	}
}

func TestAggregateByDayConservation(t *testing.T) {
	records := sampleRecords()
	rows, err := Aggregate(records, DailySpec())
	if err != nil {
		t.Fatalf("Aggregate() returned error: %v", err)
	}

	var perDay float64
	for _, row := range rows {
		perDay += row.Value(MeasureTrips)
	}

	var direct int
	for _, rec := range records {
		direct += rec.Trips
	}

	if perDay != float64(direct) {
		t.Errorf("per-day sum %v != direct sum %d", perDay, direct)
	}
}
