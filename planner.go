package rooms

import (
	"context"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type Planner struct {
	Name  string
	Rooms []*Room

	ID int64
}

type ParamsNewPlanner struct {
	Name  string  `valid:"required"`
	Rooms []*Room `valid:"required"`

	ID int64 `valid:"required"`
}

func NewPlanner(params *ParamsNewPlanner) (*Planner, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Rooms",
				Caller:      "NewPlanner",
				Issue:       errValidation,
			}
	}

	return &Planner{
			ID:   params.ID,
			Name: params.Name,

			Rooms: params.Rooms,
		},
		nil
}

// Capacity returns the minimum number of rooms needed for the intervals,
// regardless of how many rooms the planner holds.
func (planner *Planner) Capacity(intervals []Interval) (int, error) {
	return MinRoomsHeap(intervals)
}

type ParamsFit struct {
	Intervals []Interval

	FirstBookingID BookingID
}

type RoomAssignment struct {
	Interval Interval

	BookingID BookingID
	RoomID    int
}

type ResponseFit struct {
	Assignments []RoomAssignment

	RoomsUsed int
}

// Fit books every interval into the planner's rooms, first fit by start
// time against each room's existing schedule. Bookings receive consecutive
// IDs starting at FirstBookingID. Placements are staged before anything is
// booked, so a planner with too few free rooms is left untouched.
func (planner *Planner) Fit(ctx context.Context, params *ParamsFit) (*ResponseFit, error) {
	if errValidation := validateIntervals("Fit", params.Intervals); errValidation != nil {
		return nil,
			errValidation
	}

	sorted := sortedActive(params.Intervals)

	firstBookingID := ternary(
		params.FirstBookingID > BookingMaintenance,
		params.FirstBookingID,
		BookingMaintenance+1,
	)

	for _, room := range planner.Rooms {
		for ix := range sorted {
			if room.hasBooking(firstBookingID + BookingID(ix)) {
				return nil,
					fmt.Errorf(
						"booking ID %d already exists in room %d",
						firstBookingID+BookingID(ix),
						room.ID,
					)
			}
		}
	}

	staged := make([][]Interval, len(planner.Rooms))
	roomIxes := make([]int, len(sorted))

	for ix, interval := range sorted {
		placedAt := _NoAvailability

		for roomIx, room := range planner.Rooms {
			busy := append(room.busyIntervals(), staged[roomIx]...)

			if _, available := FreeSlots(busy, interval); available {
				placedAt = int64(roomIx)

				break
			}
		}

		if placedAt == _NoAvailability {
			needed, _ := MinRoomsHeap(params.Intervals)

			return nil,
				fmt.Errorf(
					"cannot fit %d intervals: needs at least %d rooms, planner has %d",
					len(sorted),
					needed,
					len(planner.Rooms),
				)
		}

		staged[placedAt] = append(staged[placedAt], interval)
		roomIxes[ix] = int(placedAt)
	}

	assignments := make([]RoomAssignment, 0, len(sorted))

	roomsUsed := make(map[int]struct{})

	for ix, interval := range sorted {
		room := planner.Rooms[roomIxes[ix]]
		bookingID := firstBookingID + BookingID(ix)

		if _, errAdd := room.AddBooking(
			ctx,
			&ParamsBooking{
				Interval: interval,
				ID:       bookingID,
			},
		); errAdd != nil {
			return nil,
				errAdd
		}

		assignments = append(
			assignments,
			RoomAssignment{
				Interval:  interval,
				BookingID: bookingID,
				RoomID:    room.ID,
			},
		)

		roomsUsed[roomIxes[ix]] = struct{}{}
	}

	return &ResponseFit{
			Assignments: assignments,
			RoomsUsed:   len(roomsUsed),
		},
		nil
}
