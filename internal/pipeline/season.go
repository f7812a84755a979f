package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidMonth indicates a month outside 1..12 was passed to SeasonOf.
// With normalized dates this is an internal-logic fault, not user input.
var ErrInvalidMonth = errors.New("invalid month")

// Season is one of four fixed labels derived from the calendar month
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// SeasonOrder is the fixed calendar ordering used for seasonal displays
var SeasonOrder = []Season{Winter, Spring, Summer, Fall}

// SeasonOf maps a calendar month (1..12) to its season label
func SeasonOf(month int) (Season, error) {
	switch month {
	case 12, 1, 2:
		return Winter, nil
	case 3, 4, 5:
		return Spring, nil
	case 6, 7, 8:
		return Summer, nil
	case 9, 10, 11:
		return Fall, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
}

// seasonRank returns the position of a season in calendar order
func seasonRank(s Season) int {
	for i, label := range SeasonOrder {
		if label == s {
			return i
		}
	}
	return len(SeasonOrder)
}
