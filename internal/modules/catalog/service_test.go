package catalog

import (
	"context"
	"testing"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"
	"guesthouse/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestService() (*Service, *mocks.GuesthouseStore, *mocks.RoomStore, *mocks.ReservationStore, *mocks.ReviewStore) {
	guesthouses := new(mocks.GuesthouseStore)
	rooms := new(mocks.RoomStore)
	reservations := new(mocks.ReservationStore)
	reviews := new(mocks.ReviewStore)

	svc := NewService(repository.Repos{
		Guesthouses:  guesthouses,
		Rooms:        rooms,
		Reservations: reservations,
		Reviews:      reviews,
	})
	return svc, guesthouses, rooms, reservations, reviews
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Search_FiltersByCapacityAndDates(t *testing.T) {
	svc, guesthouses, rooms, reservations, _ := newTestService()

	guesthouses.On("ListByName", mock.Anything, "sea").Return([]domain.Guesthouse{
		{ID: 3, Name: "Sea View", RoomCount: 2},
	}, nil)
	rooms.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Room{
		{ID: 10, GuesthouseID: 3, Capacity: 2},
		{ID: 11, GuesthouseID: 3, Capacity: 4},
	}, nil)
	// room 10 is full for the requested window
	reservations.On("ListByRoomIDs", mock.Anything, []int64{10, 11}).Return([]domain.Reservation{
		{RoomID: 10, CheckInDate: date(2025, 12, 15), CheckOutDate: date(2025, 12, 18), PeopleCount: 2},
	}, nil)

	results, err := svc.Search(context.Background(), SearchQuery{
		CheckIn:  date(2025, 12, 16),
		CheckOut: date(2025, 12, 17),
		Name:     "sea",
		People:   2,
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, []int64{11}, results[0].RoomAvailable)
}

func TestService_Search_DropsGuesthousesWithNoRoom(t *testing.T) {
	svc, guesthouses, rooms, reservations, _ := newTestService()

	guesthouses.On("ListByName", mock.Anything, "").Return([]domain.Guesthouse{
		{ID: 3, Name: "Sea View"},
	}, nil)
	rooms.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Room{
		{ID: 10, GuesthouseID: 3, Capacity: 2},
	}, nil)
	reservations.On("ListByRoomIDs", mock.Anything, []int64{10}).Return([]domain.Reservation{}, nil)

	// party bigger than any room
	results, err := svc.Search(context.Background(), SearchQuery{
		CheckIn:  date(2025, 12, 16),
		CheckOut: date(2025, 12, 17),
		People:   5,
	})

	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestService_Search_CheckoutDayRebookable(t *testing.T) {
	svc, guesthouses, rooms, reservations, _ := newTestService()

	guesthouses.On("ListByName", mock.Anything, "").Return([]domain.Guesthouse{
		{ID: 3, Name: "Sea View"},
	}, nil)
	rooms.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Room{
		{ID: 10, GuesthouseID: 3, Capacity: 2},
	}, nil)
	reservations.On("ListByRoomIDs", mock.Anything, []int64{10}).Return([]domain.Reservation{
		{RoomID: 10, CheckInDate: date(2025, 12, 15), CheckOutDate: date(2025, 12, 18), PeopleCount: 2},
	}, nil)

	results, err := svc.Search(context.Background(), SearchQuery{
		CheckIn:  date(2025, 12, 18),
		CheckOut: date(2025, 12, 20),
		People:   2,
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, []int64{10}, results[0].RoomAvailable)
}

func TestService_Search_InvalidQuery(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	cases := []SearchQuery{
		{CheckIn: date(2025, 12, 16), CheckOut: date(2025, 12, 17), People: 0},
		{CheckIn: date(2025, 12, 17), CheckOut: date(2025, 12, 16), People: 2},
		{CheckIn: date(2025, 12, 17), CheckOut: date(2025, 12, 17), People: 2},
		{People: 2},
	}
	for _, q := range cases {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestService_Rooms_FilterIDs(t *testing.T) {
	svc, guesthouses, rooms, _, _ := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Guesthouse{ID: 3}, nil)
	rooms.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Room{
		{ID: 10}, {ID: 11}, {ID: 12},
	}, nil)

	all, err := svc.Rooms(context.Background(), 3, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := svc.Rooms(context.Background(), 3, []int64{11, 12})
	assert.NoError(t, err)
	assert.Len(t, some, 2)
	assert.Equal(t, int64(11), some[0].ID)
}

func TestService_Detail_NotFound(t *testing.T) {
	svc, guesthouses, _, _, _ := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Reviews(t *testing.T) {
	svc, guesthouses, _, _, reviews := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Guesthouse{ID: 3}, nil)
	reviews.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Review{
		{ID: 1, ReservationID: 5, Rating: 5, Comment: "great"},
	}, nil)

	got, err := svc.Reviews(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Rating)
}
