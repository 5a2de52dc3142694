package rooms

import (
	"github.com/emirpasic/gods/v2/queues/priorityqueue"
)

// MinRoomsHeap returns the minimum number of rooms needed to host all
// intervals without conflict. It walks the intervals by start time and keeps
// the end time of every occupied room in a min priority queue: the room that
// frees up first sits at the head, so one peek decides whether the current
// interval reuses a room or opens a new one. The final queue size is the peak
// concurrent usage. O(n log n).
func MinRoomsHeap(intervals []Interval) (int, error) {
	if errValidation := validateIntervals("MinRoomsHeap", intervals); errValidation != nil {
		return 0,
			errValidation
	}

	roomEnds := priorityqueue.New[int64]()

	for _, interval := range sortedActive(intervals) {
		if earliestEnd, ok := roomEnds.Peek(); ok && earliestEnd <= interval.GetUTCTimeStart() {
			roomEnds.Dequeue()
		}

		roomEnds.Enqueue(interval.GetUTCTimeEnd())
	}

	return roomEnds.Size(),
		nil
}
