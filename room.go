package rooms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

type BookingID int64

// ID 0 reserved for maintenance blocks.
const BookingMaintenance = BookingID(0)

const _NoAvailability = int64(-1)

type Room struct {
	Name string

	schedule map[Interval]BookingID

	ID int
}

type ParamsNewRoom struct {
	Name string

	ID int
}

func (param *ParamsNewRoom) IsValid() error {
	if len(param.Name) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewRoom",
			Issue: goerrors.ErrNilInput{
				InputName: "Name",
			},
		}
	}

	if param.ID <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewRoom",
			Issue: goerrors.ErrInvalidInput{
				InputName: "ID",
			},
		}
	}

	return nil
}

func NewRoom(params *ParamsNewRoom) (*Room, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Room{
			Name: params.Name,
			ID:   params.ID,

			schedule: make(map[Interval]BookingID),
		},
		nil
}

func (room *Room) busyIntervals() []Interval {
	result := make([]Interval, 0, len(room.schedule))

	for interval := range room.schedule {
		result = append(result, interval)
	}

	return result
}

func (room *Room) hasBooking(bookingID BookingID) bool {
	for interval := range room.schedule {
		if room.schedule[interval] == bookingID {
			return true
		}
	}

	return false
}

// FreeWithin returns the free slots of the room inside the search interval
// and whether the room is fully available for it.
func (room *Room) FreeWithin(search *Interval) ([]Interval, bool) {
	return FreeSlots(room.busyIntervals(), *search)
}

type ParamsBooking struct {
	Interval

	ID BookingID
}

// AddBooking books the interval if the room is free for it. On conflict it
// returns the free slots still open inside the requested interval.
func (room *Room) AddBooking(_ context.Context, params *ParamsBooking) ([]Interval, error) {
	if params.GetUTCTimeStart() >= params.GetUTCTimeEnd() {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "AddBooking",
				InputName:  "TimeEnd",
				InputValue: params.TimeEnd,
				Issue: errors.New(
					"time start greater or equal to time end",
				),
			}
	}

	if params.ID <= BookingMaintenance {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "AddBooking",
				InputName:  "ID",
				InputValue: params.ID,
				Issue: goerrors.ErrNegativeInput{
					InputName: "ID",
				},
			}
	}

	if room.hasBooking(params.ID) {
		return nil,
			fmt.Errorf(
				"booking ID %d already exists",
				params.ID,
			)
	}

	freeSlots, available := room.FreeWithin(&params.Interval)
	if !available {
		return freeSlots,
			errors.New("requested time slot is busy")
	}

	room.schedule[Interval{
		TimeStart:     params.TimeStart,
		TimeEnd:       params.TimeEnd,
		SecondsOffset: params.SecondsOffset,
	}] = params.ID

	return nil, nil
}

type ResponseBookingAt struct {
	ID          BookingID
	BookedUntil int64
}

// BookingAt returns the booking occupying the room at the given timestamp.
// BookedUntil is reported in UTC.
func (room *Room) BookingAt(atTimestamp, offset int64) (*ResponseBookingAt, error) {
	atTimestampUTC := atTimestamp - offset

	for interval, bookingID := range room.schedule {
		if interval.GetUTCTimeStart() <= atTimestampUTC &&
			atTimestampUTC < interval.GetUTCTimeEnd() {
			return &ResponseBookingAt{
					ID:          bookingID,
					BookedUntil: interval.GetUTCTimeEnd(),
				},
				nil
		}
	}

	return nil,
		errors.New(
			"no booking at given timestamp",
		)
}

func (room *Room) RemoveBooking(bookingID BookingID) error {
	for interval, id := range room.schedule {
		if id == bookingID {
			delete(room.schedule, interval)

			return nil
		}
	}

	return fmt.Errorf("booking %d not found in schedule", bookingID)
}

type ParamsFindFreeStart struct {
	TimeStart        int64
	MaximumTimeStart int64
	SecondsDuration  int64
	SecondsOffset    int64

	IsLatest bool
}

// FindFreeStart returns the earliest (or latest, with IsLatest) start time at
// which a booking of the wanted duration fits, searched up to
// MaximumTimeStart. Returns -1 when nothing fits. Times are in the caller's
// offset.
func (room *Room) FindFreeStart(params *ParamsFindFreeStart) int64 {
	if params.TimeStart > params.MaximumTimeStart {
		return _NoAvailability
	}

	slots, available := room.FreeWithin(
		&Interval{
			TimeStart:     params.TimeStart,
			TimeEnd:       params.MaximumTimeStart + params.SecondsDuration,
			SecondsOffset: params.SecondsOffset,
		},
	)
	if available {
		return ternary(
			params.IsLatest,
			params.MaximumTimeStart,
			params.TimeStart,
		)
	}

	if len(slots) == 0 {
		return _NoAvailability
	}

	if params.IsLatest {
		for i := len(slots) - 1; i >= 0; i-- {
			slot := slots[i]

			if slot.TimeEnd-slot.TimeStart >= params.SecondsDuration {
				startTime := min(
					slot.TimeEnd-params.SecondsDuration,
					params.MaximumTimeStart,
				)

				if startTime >= params.TimeStart {
					return startTime
				}
			}
		}

		return _NoAvailability
	}

	for _, slot := range slots {
		if slot.TimeEnd-slot.TimeStart >= params.SecondsDuration {
			startTime := max(slot.TimeStart, params.TimeStart)

			if startTime <= params.MaximumTimeStart {
				return startTime
			}
		}
	}

	return _NoAvailability
}

func (room *Room) Schedule() string {
	if len(room.schedule) == 0 {
		return "Schedule: (empty)"
	}

	intervals := make([]Interval, 0, len(room.schedule))
	for interval := range room.schedule {
		intervals = append(intervals, interval)
	}

	sort.Slice(
		intervals,
		func(i, j int) bool {
			return intervals[i].TimeStart < intervals[j].TimeStart
		},
	)

	var sb strings.Builder
	sb.WriteString("Schedule:\n")

	for _, interval := range intervals {
		bookingID := room.schedule[interval]

		sb.WriteString(
			fmt.Sprintf(
				"- [%d-%d] (UTC %d-%d) Offset %.1fh → Booking %d\n",

				interval.TimeStart,
				interval.TimeEnd,
				interval.GetUTCTimeStart(),
				interval.GetUTCTimeEnd(),
				float64(interval.SecondsOffset)/3600,
				bookingID,
			),
		)
	}

	return sb.String()
}
