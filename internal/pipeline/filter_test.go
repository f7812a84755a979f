package pipeline

import (
	"testing"
	"time"

	"bikedash/internal/dataset"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []dataset.TripRecord {
	return []dataset.TripRecord{
		{Date: day(2023, 1, 5), Trips: 10, AvgTemp: 2.0, StationID: "S1", StationName: "Central Park"},
		{Date: day(2023, 3, 15), Trips: 20, AvgTemp: 11.0, StationID: "S2", StationName: "Union Square"},
		{Date: day(2023, 7, 10), Trips: 50, AvgTemp: 28.0, StationID: "S1", StationName: "Central Park"},
		{Date: day(2023, 10, 1), Trips: 30, AvgTemp: 15.0, StationID: "S3", StationName: "Battery Park"},
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	records := sampleRecords()
	r := NewDateRange(day(2023, 1, 5), day(2023, 7, 10))

	got := Filter(records, r)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for _, rec := range got {
		if !r.Contains(rec.Date) {
			t.Errorf("record date %v outside range", rec.Date)
		}
	}
}

func TestFilterFullRangeReturnsAll(t *testing.T) {
	records := sampleRecords()
	r := NewDateRange(day(2023, 1, 5), day(2023, 10, 1))

	if got := Filter(records, r); len(got) != len(records) {
		t.Errorf("full range returned %d of %d records", len(got), len(records))
	}
}

func TestFilterEmptyResult(t *testing.T) {
	records := sampleRecords()
	r := NewDateRange(day(2024, 1, 1), day(2024, 12, 31))

	got := Filter(records, r)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
	if got == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestNewDateRangeSwapsReversedEnds(t *testing.T) {
	r := NewDateRange(day(2023, 7, 1), day(2023, 1, 1))
	if r.Start.After(r.End) {
		t.Errorf("range not normalized: %v > %v", r.Start, r.End)
	}
}

func TestClamp(t *testing.T) {
	min, max := day(2023, 1, 5), day(2023, 10, 1)

	tests := []struct {
		name       string
		in         DateRange
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"inside untouched", NewDateRange(day(2023, 2, 1), day(2023, 3, 1)), day(2023, 2, 1), day(2023, 3, 1)},
		{"start clamped", NewDateRange(day(2022, 1, 1), day(2023, 3, 1)), min, day(2023, 3, 1)},
		{"end clamped", NewDateRange(day(2023, 2, 1), day(2024, 1, 1)), day(2023, 2, 1), max},
		{"both clamped", NewDateRange(day(2022, 1, 1), day(2024, 1, 1)), min, max},
		{"wholly before collapses to min", NewDateRange(day(2020, 1, 1), day(2020, 2, 1)), min, min},
		{"wholly after collapses to max", NewDateRange(day(2025, 1, 1), day(2025, 2, 1)), max, max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(min, max)
			if !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
				t.Errorf("Clamp() = [%v, %v], want [%v, %v]", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if got.Start.After(got.End) {
				t.Error("clamped range violates start <= end")
			}
			if got.Start.Before(min) || got.End.After(max) {
				t.Error("clamped range leaked outside the table bounds")
			}
		})
	}
}
