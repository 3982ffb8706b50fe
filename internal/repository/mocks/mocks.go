// Package mocks holds testify mocks for the repository store interfaces,
// shared by the module service tests.
package mocks

import (
	"context"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"github.com/stretchr/testify/mock"
)

// UnitOfWork runs the callback against a fixed Repos, no transaction involved.
type UnitOfWork struct {
	Repos repository.Repos
}

func (u UnitOfWork) Within(ctx context.Context, fn func(r repository.Repos) error) error {
	return fn(u.Repos)
}

type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == 0 {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStore) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	args := m.Called(ctx, loginID)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type GuesthouseStore struct {
	mock.Mock
}

func (m *GuesthouseStore) Create(ctx context.Context, g *domain.Guesthouse) error {
	args := m.Called(ctx, g)
	if g != nil && g.ID == 0 {
		g.ID = 1
	}
	return args.Error(0)
}

func (m *GuesthouseStore) GetByID(ctx context.Context, id int64) (*domain.Guesthouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guesthouse), args.Error(1)
}

func (m *GuesthouseStore) ListByHost(ctx context.Context, hostID int64) ([]domain.Guesthouse, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guesthouse), args.Error(1)
}

func (m *GuesthouseStore) ListByName(ctx context.Context, name string) ([]domain.Guesthouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guesthouse), args.Error(1)
}

func (m *GuesthouseStore) UpdateRating(ctx context.Context, id int64, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *GuesthouseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RoomStore struct {
	mock.Mock
}

func (m *RoomStore) Create(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	if r != nil && r.ID == 0 {
		r.ID = 1
	}
	return args.Error(0)
}

func (m *RoomStore) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *RoomStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *RoomStore) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Room, error) {
	args := m.Called(ctx, guesthouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *RoomStore) DeleteByGuesthouse(ctx context.Context, guesthouseID int64) error {
	args := m.Called(ctx, guesthouseID)
	return args.Error(0)
}

type ReservationStore struct {
	mock.Mock
}

func (m *ReservationStore) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if r != nil && r.ID == 0 {
		r.ID = 1
	}
	return args.Error(0)
}

func (m *ReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *ReservationStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReservationStore) DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error {
	args := m.Called(ctx, roomIDs)
	return args.Error(0)
}

func (m *ReservationStore) ListByRoomIDs(ctx context.Context, roomIDs []int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, roomIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *ReservationStore) ListByGuest(ctx context.Context, guestID int64) ([]repository.GuestReservationRow, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GuestReservationRow), args.Error(1)
}

func (m *ReservationStore) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]repository.HostReservationRow, error) {
	args := m.Called(ctx, guesthouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HostReservationRow), args.Error(1)
}

func (m *ReservationStore) SumPeopleForOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Int(0), args.Error(1)
}

type ReviewStore struct {
	mock.Mock
}

func (m *ReviewStore) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && rv.ID == 0 {
		rv.ID = 1
	}
	return args.Error(0)
}

func (m *ReviewStore) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *ReviewStore) ExistsByReservation(ctx context.Context, reservationID int64) (bool, error) {
	args := m.Called(ctx, reservationID)
	return args.Bool(0), args.Error(1)
}

func (m *ReviewStore) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Review, error) {
	args := m.Called(ctx, guesthouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *ReviewStore) RatingsByGuesthouse(ctx context.Context, guesthouseID int64) ([]int, error) {
	args := m.Called(ctx, guesthouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *ReviewStore) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *ReviewStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReviewStore) DeleteByReservation(ctx context.Context, reservationID int64) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *ReviewStore) DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error {
	args := m.Called(ctx, roomIDs)
	return args.Error(0)
}
