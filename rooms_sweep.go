package rooms

import (
	"sort"
)

// MinRoomsSweep returns the minimum number of rooms needed to host all
// intervals without conflict, sweeping the sorted boundary values with two
// pointers. Pairing between starts and ends is irrelevant, only the boundary
// multisets matter: a start before the earliest pending end raises the active
// count, anything else releases a room first. The strict comparison frees a
// room before admitting an interval that starts exactly when another ends.
// O(n log n).
func MinRoomsSweep(intervals []Interval) (int, error) {
	if errValidation := validateIntervals("MinRoomsSweep", intervals); errValidation != nil {
		return 0,
			errValidation
	}

	sorted := sortedActive(intervals)

	starts := make([]int64, len(sorted))
	ends := make([]int64, len(sorted))

	for ix, interval := range sorted {
		starts[ix] = interval.GetUTCTimeStart()
		ends[ix] = interval.GetUTCTimeEnd()
	}

	sort.Slice(
		ends,
		func(i, j int) bool {
			return ends[i] < ends[j]
		},
	)

	var active, peak int
	var i, j int

	for i < len(starts) {
		if starts[i] < ends[j] {
			active++
			i++

			peak = max(peak, active)

			continue
		}

		active--
		j++
	}

	return peak,
		nil
}
