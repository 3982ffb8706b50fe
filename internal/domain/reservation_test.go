package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	res := Reservation{
		CheckInDate:  date(2025, 12, 15),
		CheckOutDate: date(2025, 12, 18),
	}

	// checkout day is re-bookable
	assert.False(t, res.Overlaps(date(2025, 12, 18), date(2025, 12, 20)))
	assert.False(t, res.Overlaps(date(2025, 12, 12), date(2025, 12, 15)))

	assert.True(t, res.Overlaps(date(2025, 12, 17), date(2025, 12, 19)))
	assert.True(t, res.Overlaps(date(2025, 12, 14), date(2025, 12, 16)))
	assert.True(t, res.Overlaps(date(2025, 12, 16), date(2025, 12, 17)))
	assert.True(t, res.Overlaps(date(2025, 12, 10), date(2025, 12, 25)))

	assert.False(t, res.Overlaps(date(2025, 12, 20), date(2025, 12, 22)))
	assert.False(t, res.Overlaps(date(2025, 12, 10), date(2025, 12, 12)))
}

func TestReservedPeople_SumsOnlyOverlapping(t *testing.T) {
	reservations := []Reservation{
		{CheckInDate: date(2025, 12, 15), CheckOutDate: date(2025, 12, 18), PeopleCount: 2},
		{CheckInDate: date(2025, 12, 16), CheckOutDate: date(2025, 12, 17), PeopleCount: 1},
		{CheckInDate: date(2025, 12, 18), CheckOutDate: date(2025, 12, 20), PeopleCount: 4},
	}

	assert.Equal(t, 3, ReservedPeople(reservations, date(2025, 12, 16), date(2025, 12, 17)))
	assert.Equal(t, 4, ReservedPeople(reservations, date(2025, 12, 18), date(2025, 12, 19)))
	assert.Equal(t, 0, ReservedPeople(reservations, date(2025, 12, 20), date(2025, 12, 22)))
}

func TestRoom_IsAvailable(t *testing.T) {
	room := Room{Capacity: 4}
	reservations := []Reservation{
		{CheckInDate: date(2025, 12, 15), CheckOutDate: date(2025, 12, 18), PeopleCount: 2},
	}

	assert.True(t, room.IsAvailable(reservations, date(2025, 12, 16), date(2025, 12, 17), 2))
	assert.False(t, room.IsAvailable(reservations, date(2025, 12, 16), date(2025, 12, 17), 3))

	// no overlap, full capacity applies
	assert.True(t, room.IsAvailable(reservations, date(2025, 12, 18), date(2025, 12, 20), 4))

	assert.True(t, room.IsAvailable(nil, date(2025, 12, 16), date(2025, 12, 17), 4))
	assert.False(t, room.IsAvailable(nil, date(2025, 12, 16), date(2025, 12, 17), 5))
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	assert.NoError(t, err)

	ts := time.Date(2025, 12, 15, 23, 45, 12, 999, loc)
	got := DateOnly(ts)

	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestBeforeDay_ComparesCalendarDates(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	assert.NoError(t, err)

	// Seoul midnight is an earlier instant than UTC midnight of the same date,
	// yet both fall on the same calendar day.
	seoul := time.Date(2025, 12, 15, 0, 0, 0, 0, loc)
	utc := date(2025, 12, 15)

	assert.False(t, BeforeDay(seoul, utc))
	assert.False(t, BeforeDay(utc, seoul))

	assert.True(t, BeforeDay(seoul, date(2025, 12, 16)))
	assert.False(t, BeforeDay(date(2025, 12, 16), seoul))
}

func TestToday_UTCMidnight(t *testing.T) {
	got := Today()

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Now().Format(DateLayout), got.Format(DateLayout))
	assert.True(t, got.Equal(DateOnly(got)))
}
