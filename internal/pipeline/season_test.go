package pipeline

import (
	"errors"
	"testing"
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month int
		want  Season
	}{
		{1, Winter},
		{2, Winter},
		{3, Spring},
		{4, Spring},
		{5, Spring},
		{6, Summer},
		{7, Summer},
		{8, Summer},
		{9, Fall},
		{10, Fall},
		{11, Fall},
		{12, Winter},
	}

	for _, tt := range tests {
		got, err := SeasonOf(tt.month)
		if err != nil {
			t.Errorf("SeasonOf(%d) returned error: %v", tt.month, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SeasonOf(%d) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

func TestSeasonOfInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1, 100} {
		_, err := SeasonOf(month)
		if !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("SeasonOf(%d) expected ErrInvalidMonth, got %v", month, err)
		}
	}
}

func TestSeasonOfIsPure(t *testing.T) {
	first, _ := SeasonOf(7)
	for i := 0; i < 10; i++ {
		again, _ := SeasonOf(7)
		if again != first {
			t.Fatalf("SeasonOf(7) not stable: %s then %s", first, again)
		}
	}
}

func TestSeasonRankOrder(t *testing.T) {
	if seasonRank(Winter) >= seasonRank(Spring) ||
		seasonRank(Spring) >= seasonRank(Summer) ||
		seasonRank(Summer) >= seasonRank(Fall) {
		t.Error("season ranks do not follow calendar order")
	}
}
