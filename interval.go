package rooms

import (
	"fmt"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
)

type Interval struct {
	TimeStart     int64
	TimeEnd       int64
	SecondsOffset int64
}

func (interval *Interval) GetUTCTimeStart() int64 {
	return interval.TimeStart - interval.SecondsOffset
}

func (interval *Interval) GetUTCTimeEnd() int64 {
	return interval.TimeEnd - interval.SecondsOffset
}

// Overlap compares UTC times. Intervals are half open,
// touching boundaries do not overlap.
func Overlap(a, b Interval) bool {
	overlapStart := max(a.GetUTCTimeStart(), b.GetUTCTimeStart())
	overlapEnd := min(a.GetUTCTimeEnd(), b.GetUTCTimeEnd())

	return overlapStart < overlapEnd
}

func validateIntervals(caller string, intervals []Interval) error {
	for ix, interval := range intervals {
		if interval.GetUTCTimeStart() > interval.GetUTCTimeEnd() {
			return goerrors.ErrValidation{
				Caller: caller,
				Issue: goerrors.ErrInvalidInput{
					InputName:  fmt.Sprintf("intervals[%d]", ix),
					InputValue: interval,
				},
			}
		}
	}

	return nil
}

// sortedActive returns a private copy sorted by UTC start time.
// Zero length intervals occupy no room time and are dropped.
func sortedActive(intervals []Interval) []Interval {
	result := make([]Interval, 0, len(intervals))

	for _, interval := range intervals {
		if interval.GetUTCTimeStart() < interval.GetUTCTimeEnd() {
			result = append(
				result,
				interval,
			)
		}
	}

	sort.Slice(
		result,
		func(i, j int) bool {
			return result[i].GetUTCTimeStart() < result[j].GetUTCTimeStart()
		},
	)

	return result
}
