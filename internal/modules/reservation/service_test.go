package reservation

import (
	"context"
	"testing"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"
	"guesthouse/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService() (*Service, *mocks.UserStore, *mocks.RoomStore, *mocks.ReservationStore, *mocks.ReviewStore) {
	users := new(mocks.UserStore)
	rooms := new(mocks.RoomStore)
	reservations := new(mocks.ReservationStore)
	reviews := new(mocks.ReviewStore)

	repos := repository.Repos{
		Users:        users,
		Rooms:        rooms,
		Reservations: reservations,
		Reviews:      reviews,
	}
	svc := NewService(repos, mocks.UnitOfWork{Repos: repos})
	return svc, users, rooms, reservations, reviews
}

func TestService_Create_Success(t *testing.T) {
	svc, users, rooms, reservations, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleGuest}, nil)
	rooms.On("GetByIDForUpdate", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, Capacity: 4}, nil)
	reservations.On("SumPeopleForOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(2, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Create(context.Background(), 7, CreateReservationRequest{
		RoomID:       10,
		CheckInDate:  "2025-12-16",
		CheckOutDate: "2025-12-18",
		PeopleCount:  2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, int64(10), res.RoomID)
	assert.Equal(t, int64(7), res.GuestID)
	assert.Equal(t, 2, res.PeopleCount)
	reservations.AssertExpectations(t)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	svc, users, rooms, reservations, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	rooms.On("GetByIDForUpdate", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, Capacity: 4}, nil)
	// 3 already staying, only 1 seat left
	reservations.On("SumPeopleForOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(3, nil)

	_, err := svc.Create(context.Background(), 7, CreateReservationRequest{
		RoomID:       10,
		CheckInDate:  "2025-12-16",
		CheckOutDate: "2025-12-18",
		PeopleCount:  2,
	})

	assert.ErrorIs(t, err, ErrNoCapacity)
	reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ExactFitSucceeds(t *testing.T) {
	svc, users, rooms, reservations, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	rooms.On("GetByIDForUpdate", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, Capacity: 4}, nil)
	reservations.On("SumPeopleForOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(2, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), 7, CreateReservationRequest{
		RoomID:       10,
		CheckInDate:  "2025-12-16",
		CheckOutDate: "2025-12-18",
		PeopleCount:  2,
	})

	assert.NoError(t, err)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	cases := []CreateReservationRequest{
		{RoomID: 10, CheckInDate: "2025-12-16", CheckOutDate: "2025-12-18", PeopleCount: 0},
		{RoomID: 10, CheckInDate: "not-a-date", CheckOutDate: "2025-12-18", PeopleCount: 2},
		{RoomID: 10, CheckInDate: "2025-12-16", CheckOutDate: "bad", PeopleCount: 2},
		{RoomID: 10, CheckInDate: "2025-12-18", CheckOutDate: "2025-12-16", PeopleCount: 2},
		{RoomID: 10, CheckInDate: "2025-12-16", CheckOutDate: "2025-12-16", PeopleCount: 2},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), 7, req)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestService_Create_RoomNotFound(t *testing.T) {
	svc, users, rooms, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	rooms.On("GetByIDForUpdate", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 7, CreateReservationRequest{
		RoomID:       99,
		CheckInDate:  "2025-12-16",
		CheckOutDate: "2025-12-18",
		PeopleCount:  2,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Cancel_BeforeCheckIn(t *testing.T) {
	svc, _, _, reservations, reviews := newTestService()

	checkIn := time.Now().AddDate(0, 0, 3)
	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:           5,
		GuestID:      7,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
	}, nil)
	reviews.On("DeleteByReservation", mock.Anything, int64(5)).Return(nil)
	reservations.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Cancel(context.Background(), 7, 5)

	assert.NoError(t, err)
	reservations.AssertExpectations(t)
	reviews.AssertExpectations(t)
}

func TestService_Cancel_OnCheckInDay(t *testing.T) {
	svc, _, _, reservations, _ := newTestService()

	today := domain.DateOnly(time.Now())
	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:           5,
		GuestID:      7,
		CheckInDate:  today,
		CheckOutDate: today.AddDate(0, 0, 2),
	}, nil)

	err := svc.Cancel(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrTooLate)
	reservations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Check-in dates come off the wire as UTC midnight while the clock runs in the
// server's zone. East of UTC the local day starts first, which must not open a
// cancellation window on the check-in day itself.
func TestService_Cancel_OnCheckInDayEastOfUTC(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	svc, _, _, reservations, _ := newTestService()

	checkIn, err := time.Parse(domain.DateLayout, time.Now().Format(domain.DateLayout))
	require.NoError(t, err)
	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:           5,
		GuestID:      7,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
	}, nil)

	err = svc.Cancel(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrTooLate)
	reservations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Cancel_NotOwner(t *testing.T) {
	svc, _, _, reservations, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:          5,
		GuestID:     8,
		CheckInDate: time.Now().AddDate(0, 0, 3),
	}, nil)

	err := svc.Cancel(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _, _, reservations, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Cancel(context.Background(), 7, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
