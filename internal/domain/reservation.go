package domain

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type Reservation struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"room_id"`
	GuestID      int64     `json:"guest_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	PeopleCount  int       `json:"people_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Overlaps reports whether the reservation's stay shares a night with
// [checkIn, checkOut). Both ranges are half-open: a reservation ending the day
// another begins does not overlap, so the checkout day is re-bookable.
func (r Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckInDate.Before(checkOut) && r.CheckOutDate.After(checkIn)
}

// DateOnly truncates t to midnight, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BeforeDay reports whether a's calendar date precedes b's. Each side is read
// in its own location, so a local clock and a UTC-parsed wire date compare by
// calendar date rather than by instant.
func BeforeDay(a, b time.Time) bool {
	return a.Format(DateLayout) < b.Format(DateLayout)
}

// Today is the current calendar date at UTC midnight, the same normalization
// wire dates get from time.Parse.
func Today() time.Time {
	n := time.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
