package order

import (
	"errors"
	"fmt"
	"time"

	"chefbook/internal/pkg/errs"
	"chefbook/internal/pkg/guard"
)

// ErrTimeSlotIsNotConstructed is returned when a TimeSlot was not created
// through the NewTimeSlot factory method.
var ErrTimeSlotIsNotConstructed = errors.New("TimeSlot must be created via NewTimeSlot constructor")

// slotTimeLayout is the wire format for slot start and end times.
const slotTimeLayout = "15:04"

// TimeSlot is the booked session window on the selected date: a day label
// plus start and end times in "HH:MM" form. It is an immutable value object.
type TimeSlot struct { //nolint:recvcheck //setters used only during construction
	day   string
	start string
	end   string

	guard guard.ConstructorGuard
}

// NewTimeSlot creates a time slot with validation.
// The day must be non-empty, both times must parse as "HH:MM", and the start
// must precede the end. A slot failing any of these is not resolvable and the
// order referencing it must not be created.
func NewTimeSlot(day, start, end string) (TimeSlot, error) {
	slot := TimeSlot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		slot.setDay(day),
		slot.setTimes(start, end),
	); err != nil {
		return TimeSlot{}, err
	}

	return slot, nil
}

// Validate ensures the TimeSlot was created through NewTimeSlot.
func (s TimeSlot) Validate() error {
	return s.guard.Validate(ErrTimeSlotIsNotConstructed)
}

// Day returns the slot's day label.
func (s TimeSlot) Day() string {
	return s.day
}

// Start returns the slot's start time in "HH:MM" form.
func (s TimeSlot) Start() string {
	return s.start
}

// End returns the slot's end time in "HH:MM" form.
func (s TimeSlot) End() string {
	return s.end
}

// String returns the slot in "Day HH:MM-HH:MM" form.
func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.day, s.start, s.end)
}

func (s *TimeSlot) setDay(day string) error {
	if day == "" {
		return errs.NewValueIsRequiredError("time slot day")
	}
	s.day = day
	return nil
}

func (s *TimeSlot) setTimes(start, end string) error {
	startAt, err := time.Parse(slotTimeLayout, start)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("time slot start", err)
	}

	endAt, err := time.Parse(slotTimeLayout, end)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("time slot end", err)
	}

	if !startAt.Before(endAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"time slot",
			fmt.Errorf("start %s is not before end %s", start, end),
		)
	}

	s.start = start
	s.end = end
	return nil
}
