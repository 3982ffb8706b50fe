package guesthouse

import (
	"context"
	"testing"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"
	"guesthouse/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestService() (*Service, *mocks.UserStore, *mocks.GuesthouseStore, *mocks.RoomStore, *mocks.ReservationStore, *mocks.ReviewStore) {
	users := new(mocks.UserStore)
	guesthouses := new(mocks.GuesthouseStore)
	rooms := new(mocks.RoomStore)
	reservations := new(mocks.ReservationStore)
	reviews := new(mocks.ReviewStore)

	repos := repository.Repos{
		Users:        users,
		Guesthouses:  guesthouses,
		Rooms:        rooms,
		Reservations: reservations,
		Reviews:      reviews,
	}
	svc := NewService(repos, mocks.UnitOfWork{Repos: repos})
	return svc, users, guesthouses, rooms, reservations, reviews
}

func intPtr(v int) *int { return &v }

func TestService_Create_WithRooms(t *testing.T) {
	svc, users, guesthouses, rooms, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleHost}, nil)
	guesthouses.On("Create", mock.Anything, mock.Anything).Return(nil)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil).Times(2)

	id, err := svc.Create(context.Background(), 1, CreateGuesthouseRequest{
		Name:      "Sea View",
		Address:   "12 Haeundae-ro",
		RoomCount: intPtr(2),
		Rooms: []RoomRequest{
			{Name: "Double", Capacity: 2, Price: 80000},
			{Name: "Suite", Capacity: 4, Price: 140000},
		},
	})

	assert.NoError(t, err)
	assert.NotZero(t, id)
	rooms.AssertExpectations(t)
}

func TestService_Create_RoomCountMismatch(t *testing.T) {
	svc, _, guesthouses, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, CreateGuesthouseRequest{
		Name:      "Sea View",
		Address:   "12 Haeundae-ro",
		RoomCount: intPtr(3),
		Rooms: []RoomRequest{
			{Name: "Double", Capacity: 2},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
	guesthouses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidRoom(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, CreateGuesthouseRequest{
		Name:    "Sea View",
		Address: "12 Haeundae-ro",
		Rooms: []RoomRequest{
			{Name: "Broken", Capacity: 0},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_HostMissing(t *testing.T) {
	svc, users, _, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 99, CreateGuesthouseRequest{
		Name:    "Sea View",
		Address: "12 Haeundae-ro",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_CascadesInOrder(t *testing.T) {
	svc, _, guesthouses, rooms, reservations, reviews := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Guesthouse{ID: 3, HostID: 1}, nil)
	rooms.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]domain.Room{{ID: 10}, {ID: 11}}, nil)
	reviews.On("DeleteByRoomIDs", mock.Anything, []int64{10, 11}).Return(nil)
	reservations.On("DeleteByRoomIDs", mock.Anything, []int64{10, 11}).Return(nil)
	rooms.On("DeleteByGuesthouse", mock.Anything, int64(3)).Return(nil)
	guesthouses.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := svc.Delete(context.Background(), 3, 1)

	assert.NoError(t, err)
	reviews.AssertExpectations(t)
	reservations.AssertExpectations(t)
	rooms.AssertExpectations(t)
	guesthouses.AssertExpectations(t)
}

func TestService_Delete_NotOwner(t *testing.T) {
	svc, _, guesthouses, _, _, _ := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Guesthouse{ID: 3, HostID: 2}, nil)

	err := svc.Delete(context.Background(), 3, 1)

	assert.ErrorIs(t, err, ErrForbidden)
	guesthouses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _, guesthouses, _, _, _ := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 404, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Reservations_OwnerOnly(t *testing.T) {
	svc, _, guesthouses, _, reservations, _ := newTestService()

	guesthouses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Guesthouse{ID: 3, HostID: 1}, nil)
	reservations.On("ListByGuesthouse", mock.Anything, int64(3)).Return([]repository.HostReservationRow{
		{ID: 5, RoomID: 10, RoomName: "Double", GuestID: 7, GuestUsername: "guest1"},
	}, nil)

	rows, err := svc.Reservations(context.Background(), 3, 1)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "guest1", rows[0].GuestUsername)

	_, err = svc.Reservations(context.Background(), 3, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}
