package domain

import "time"

type Room struct {
	ID           int64  `json:"id"`
	GuesthouseID int64  `json:"guesthouse_id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	Price        int64  `json:"price"`
	PhotoID      *int64 `json:"photo_id,omitempty"`
}

// ReservedPeople sums the people counts of every reservation that shares at
// least one night with [checkIn, checkOut).
func ReservedPeople(reservations []Reservation, checkIn, checkOut time.Time) int {
	total := 0
	for _, res := range reservations {
		if res.Overlaps(checkIn, checkOut) {
			total += res.PeopleCount
		}
	}
	return total
}

// IsAvailable reports whether the room can take `people` more guests for the
// whole of [checkIn, checkOut), given its current reservations.
func (r Room) IsAvailable(reservations []Reservation, checkIn, checkOut time.Time, people int) bool {
	reserved := ReservedPeople(reservations, checkIn, checkOut)
	return r.Capacity-reserved-people >= 0
}
