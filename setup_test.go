package rooms

import (
	"math/rand"
)

const (
	oneHour  = int64(3600)
	halfHour = int64(1800)
)

var now int64 = 10000

func randomIntervals(rnd *rand.Rand, count int) []Interval {
	result := make([]Interval, count)

	for ix := range result {
		start := rnd.Int63n(100)
		duration := 1 + rnd.Int63n(30)

		result[ix] = Interval{
			TimeStart:     start,
			TimeEnd:       start + duration,
			SecondsOffset: rnd.Int63n(3) * oneHour,
		}

		// offsets shift wall clock, not the UTC span
		result[ix].TimeStart = result[ix].TimeStart + result[ix].SecondsOffset
		result[ix].TimeEnd = result[ix].TimeEnd + result[ix].SecondsOffset
	}

	return result
}
