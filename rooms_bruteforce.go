package rooms

type placement struct {
	Interval

	RoomIx int
}

// firstFitPlacements assigns each interval, in start order, to the first
// room whose last booking already ended. Rooms are created on demand,
// so the highest room index plus one is the minimum room count.
func firstFitPlacements(intervals []Interval) []placement {
	sorted := sortedActive(intervals)

	var roomEnds []int64

	result := make([]placement, 0, len(sorted))

	for _, interval := range sorted {
		placed := false

		for ix := range roomEnds {
			if roomEnds[ix] <= interval.GetUTCTimeStart() {
				roomEnds[ix] = interval.GetUTCTimeEnd()

				result = append(
					result,
					placement{
						Interval: interval,
						RoomIx:   ix,
					},
				)

				placed = true

				break
			}
		}

		if !placed {
			roomEnds = append(roomEnds, interval.GetUTCTimeEnd())

			result = append(
				result,
				placement{
					Interval: interval,
					RoomIx:   len(roomEnds) - 1,
				},
			)
		}
	}

	return result
}

func countRooms(placements []placement) int {
	var result int

	for _, placement := range placements {
		result = max(result, placement.RoomIx+1)
	}

	return result
}

// MinRoomsBruteForce returns the minimum number of rooms needed to host all
// intervals without conflict, scanning every room per interval. Quadratic,
// kept as the reference for the faster variants and as the basis for
// per interval placements in Planner.Fit.
func MinRoomsBruteForce(intervals []Interval) (int, error) {
	if errValidation := validateIntervals("MinRoomsBruteForce", intervals); errValidation != nil {
		return 0,
			errValidation
	}

	return countRooms(firstFitPlacements(intervals)),
		nil
}
