package rooms

// CanAttendAll reports whether a single room suffices, i.e. no two intervals
// overlap. After sorting by start time only adjacent pairs need checking: if
// interval i+1 starts at or after interval i ends, every later interval
// starts later still and cannot reach back into i.
func CanAttendAll(intervals []Interval) (bool, error) {
	if errValidation := validateIntervals("CanAttendAll", intervals); errValidation != nil {
		return false,
			errValidation
	}

	sorted := sortedActive(intervals)

	for ix := 1; ix < len(sorted); ix++ {
		if sorted[ix].GetUTCTimeStart() < sorted[ix-1].GetUTCTimeEnd() {
			return false,
				nil
		}
	}

	return true,
		nil
}
