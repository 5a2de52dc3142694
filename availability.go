package rooms

import (
	"sort"
)

// FreeSlots returns:
//   - (nil, true)    = search is fully available (no busy intervals or no overlap)
//   - (slots, false) = partially available (returns the free time slots)
//   - (nil, false)   = completely unavailable (search is fully covered)
//
// Slots are reported in the search interval's offset.
func FreeSlots(busy []Interval, search Interval) ([]Interval, bool) {
	busyUTCIntervals := make([]Interval, 0, len(busy))

	for _, busyInterval := range busy {
		busyUTCIntervals = append(
			busyUTCIntervals,
			Interval{
				TimeStart:     busyInterval.GetUTCTimeStart(),
				TimeEnd:       busyInterval.GetUTCTimeEnd(),
				SecondsOffset: busyInterval.SecondsOffset,
			},
		)
	}

	sort.Slice(
		busyUTCIntervals,
		func(i, j int) bool {
			return busyUTCIntervals[i].TimeStart < busyUTCIntervals[j].TimeStart
		},
	)

	var availableIntervals []Interval

	currentStart := search.GetUTCTimeStart()
	searchEnd := search.GetUTCTimeEnd()

	hasOverlap := false

	for _, busyInterval := range busyUTCIntervals {
		if busyInterval.TimeEnd <= currentStart {
			continue
		}

		if busyInterval.TimeStart >= searchEnd {
			break
		}

		hasOverlap = true

		if busyInterval.TimeStart > currentStart {
			availableIntervals = append(
				availableIntervals,
				Interval{
					TimeStart:     currentStart + search.SecondsOffset,
					TimeEnd:       busyInterval.TimeStart + search.SecondsOffset,
					SecondsOffset: search.SecondsOffset,
				},
			)
		}

		currentStart = max(currentStart, busyInterval.TimeEnd)
	}

	if currentStart < searchEnd {
		availableIntervals = append(
			availableIntervals,
			Interval{
				TimeStart:     currentStart + search.SecondsOffset,
				TimeEnd:       searchEnd + search.SecondsOffset,
				SecondsOffset: search.SecondsOffset,
			},
		)
	}

	if !hasOverlap {
		return nil,
			true
	}

	return availableIntervals,
		false
}
