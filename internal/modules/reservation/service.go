package reservation

import (
	"context"
	"errors"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repos repository.Repos
	uow   repository.UnitOfWork
}

func NewService(repos repository.Repos, uow repository.UnitOfWork) *Service {
	return &Service{repos: repos, uow: uow}
}

// Create books a room for [check_in, check_out). Capacity is checked against
// the summed people counts of overlapping reservations, not their mere
// existence, so partial bookings stack against the same capacity. The check
// and the insert run in one transaction with the room row locked, so two
// concurrent requests cannot both read the same remaining capacity.
func (s *Service) Create(ctx context.Context, guestID int64, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.PeopleCount <= 0 {
		return nil, ErrValidation
	}

	checkIn, err := time.Parse(domain.DateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(domain.DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrValidation
	}

	if _, err := s.repos.Users.GetByID(ctx, guestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res := &domain.Reservation{
		RoomID:       req.RoomID,
		GuestID:      guestID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PeopleCount:  req.PeopleCount,
	}

	err = s.uow.Within(ctx, func(r repository.Repos) error {
		room, err := r.Rooms.GetByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		reserved, err := r.Reservations.SumPeopleForOverlap(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if req.PeopleCount > room.Capacity-reserved {
			return ErrNoCapacity
		}

		return r.Reservations.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *Service) MyList(ctx context.Context, guestID int64) ([]repository.GuestReservationRow, error) {
	return s.repos.Reservations.ListByGuest(ctx, guestID)
}

// Cancel deletes the guest's reservation, allowed only strictly before the
// check-in date. An attached review goes with it.
func (s *Service) Cancel(ctx context.Context, guestID, reservationID int64) error {
	return s.uow.Within(ctx, func(r repository.Repos) error {
		res, err := r.Reservations.GetByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if res.GuestID != guestID {
			return ErrForbidden
		}

		if !domain.BeforeDay(time.Now(), res.CheckInDate) {
			return ErrTooLate
		}

		if err := r.Reviews.DeleteByReservation(ctx, reservationID); err != nil {
			return err
		}
		return r.Reservations.Delete(ctx, reservationID)
	})
}
