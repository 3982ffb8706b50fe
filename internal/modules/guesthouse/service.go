package guesthouse

import (
	"context"
	"errors"

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

// Create persists a guesthouse together with its rooms in one transaction.
// When both room_count and a rooms array are supplied they must agree; this is
// the only point where the declared count is checked against reality.
func (s *Service) Create(ctx context.Context, hostID int64, req CreateGuesthouseRequest) (int64, error) {
	if req.RoomCount != nil && req.Rooms != nil && *req.RoomCount != len(req.Rooms) {
		return 0, ErrValidation
	}
	for _, r := range req.Rooms {
		if r.Capacity <= 0 || r.Price < 0 {
			return 0, ErrValidation
		}
	}

	if _, err := s.repos.Users.GetByID(ctx, hostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	roomCount := len(req.Rooms)
	if req.RoomCount != nil {
		roomCount = *req.RoomCount
	}

	g := &domain.Guesthouse{
		HostID:      hostID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		PhotoID:     req.PhotoID,
		RoomCount:   roomCount,
	}

	err := s.uow.Within(ctx, func(r repository.Repos) error {
		if err := r.Guesthouses.Create(ctx, g); err != nil {
			return err
		}
		for _, room := range req.Rooms {
			rm := &domain.Room{
				GuesthouseID: g.ID,
				Name:         room.Name,
				Capacity:     room.Capacity,
				Price:        room.Price,
				PhotoID:      room.PhotoID,
			}
			if err := r.Rooms.Create(ctx, rm); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return g.ID, nil
}

func (s *Service) MyList(ctx context.Context, hostID int64) ([]domain.Guesthouse, error) {
	return s.repos.Guesthouses.ListByHost(ctx, hostID)
}

// Delete removes the guesthouse and everything it transitively owns: rooms,
// their reservations and the reservations' reviews, all in one transaction.
func (s *Service) Delete(ctx context.Context, guesthouseID, hostID int64) error {
	return s.uow.Within(ctx, func(r repository.Repos) error {
		g, err := r.Guesthouses.GetByID(ctx, guesthouseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if g.HostID != hostID {
			return ErrForbidden
		}

		rooms, err := r.Rooms.ListByGuesthouse(ctx, guesthouseID)
		if err != nil {
			return err
		}
		roomIDs := make([]int64, 0, len(rooms))
		for _, rm := range rooms {
			roomIDs = append(roomIDs, rm.ID)
		}

		if err := r.Reviews.DeleteByRoomIDs(ctx, roomIDs); err != nil {
			return err
		}
		if err := r.Reservations.DeleteByRoomIDs(ctx, roomIDs); err != nil {
			return err
		}
		if err := r.Rooms.DeleteByGuesthouse(ctx, guesthouseID); err != nil {
			return err
		}
		return r.Guesthouses.Delete(ctx, guesthouseID)
	})
}

// Reservations lists every reservation across the guesthouse's rooms, ordered
// by check-in date, for the owning host.
func (s *Service) Reservations(ctx context.Context, guesthouseID, hostID int64) ([]repository.HostReservationRow, error) {
	g, err := s.repos.Guesthouses.GetByID(ctx, guesthouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if g.HostID != hostID {
		return nil, ErrForbidden
	}

	return s.repos.Reservations.ListByGuesthouse(ctx, guesthouseID)
}
