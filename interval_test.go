package rooms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "1. disjoint",
			a:        Interval{TimeStart: now, TimeEnd: now + oneHour},
			b:        Interval{TimeStart: now + 2*oneHour, TimeEnd: now + 3*oneHour},
			expected: false,
		},
		{
			name:     "2. touching boundaries",
			a:        Interval{TimeStart: now, TimeEnd: now + oneHour},
			b:        Interval{TimeStart: now + oneHour, TimeEnd: now + 2*oneHour},
			expected: false,
		},
		{
			name:     "3. nested",
			a:        Interval{TimeStart: now, TimeEnd: now + 3*oneHour},
			b:        Interval{TimeStart: now + oneHour, TimeEnd: now + 2*oneHour},
			expected: true,
		},
		{
			name:     "4. partial",
			a:        Interval{TimeStart: now, TimeEnd: now + 2*oneHour},
			b:        Interval{TimeStart: now + oneHour, TimeEnd: now + 3*oneHour},
			expected: true,
		},
		{
			name: "5. same UTC span, different offsets",
			a:    Interval{TimeStart: now, TimeEnd: now + oneHour},
			b: Interval{
				TimeStart:     now + oneHour,
				TimeEnd:       now + 2*oneHour,
				SecondsOffset: oneHour,
			},
			expected: true,
		},
		{
			name:     "6. zero length never overlaps",
			a:        Interval{TimeStart: now, TimeEnd: now},
			b:        Interval{TimeStart: now - oneHour, TimeEnd: now + oneHour},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				require.Equal(t,
					tt.expected,
					Overlap(tt.a, tt.b),
				)

				require.Equal(t,
					tt.expected,
					Overlap(tt.b, tt.a),
				)
			},
		)
	}
}

func TestUTCAccessors(t *testing.T) {
	interval := Interval{
		TimeStart:     now + 2*oneHour,
		TimeEnd:       now + 3*oneHour,
		SecondsOffset: 2 * oneHour,
	}

	require.Equal(t, now, interval.GetUTCTimeStart())
	require.Equal(t, now+oneHour, interval.GetUTCTimeEnd())
}

func TestMalformedInterval(t *testing.T) {
	malformed := []Interval{
		{TimeStart: now, TimeEnd: now + oneHour},
		{TimeStart: now + oneHour, TimeEnd: now},
	}

	t.Run(
		"1. brute force",
		func(t *testing.T) {
			noRooms, errCompute := MinRoomsBruteForce(malformed)
			require.Error(t, errCompute)
			require.Zero(t, noRooms)
		},
	)

	t.Run(
		"2. heap",
		func(t *testing.T) {
			noRooms, errCompute := MinRoomsHeap(malformed)
			require.Error(t, errCompute)
			require.Zero(t, noRooms)
		},
	)

	t.Run(
		"3. sweep",
		func(t *testing.T) {
			noRooms, errCompute := MinRoomsSweep(malformed)
			require.Error(t, errCompute)
			require.Zero(t, noRooms)
		},
	)

	t.Run(
		"4. attendance",
		func(t *testing.T) {
			canAttend, errCompute := CanAttendAll(malformed)
			require.Error(t, errCompute)
			require.False(t, canAttend)
		},
	)
}
