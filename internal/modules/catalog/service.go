package catalog

import (
	"context"
	"errors"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repos repository.Repos
}

func NewService(repos repository.Repos) *Service {
	return &Service{repos: repos}
}

func (s *Service) Detail(ctx context.Context, guesthouseID int64) (*domain.Guesthouse, error) {
	g, err := s.repos.Guesthouses.GetByID(ctx, guesthouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// Rooms lists the guesthouse's rooms, narrowed to filterIDs when given
// (callers pass the room_available ids a search returned).
func (s *Service) Rooms(ctx context.Context, guesthouseID int64, filterIDs []int64) ([]domain.Room, error) {
	if _, err := s.repos.Guesthouses.GetByID(ctx, guesthouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rooms, err := s.repos.Rooms.ListByGuesthouse(ctx, guesthouseID)
	if err != nil {
		return nil, err
	}
	if len(filterIDs) == 0 {
		return rooms, nil
	}

	wanted := make(map[int64]bool, len(filterIDs))
	for _, id := range filterIDs {
		wanted[id] = true
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if wanted[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) Reviews(ctx context.Context, guesthouseID int64) ([]domain.Review, error) {
	if _, err := s.repos.Guesthouses.GetByID(ctx, guesthouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repos.Reviews.ListByGuesthouse(ctx, guesthouseID)
}

// Search returns guesthouses matching the name fragment that have at least
// one room able to take the requested party for the whole stay. Each result
// carries the ids of its available rooms.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	if q.People <= 0 || q.CheckIn.IsZero() || q.CheckOut.IsZero() || !q.CheckIn.Before(q.CheckOut) {
		return nil, ErrValidation
	}

	guesthouses, err := s.repos.Guesthouses.ListByName(ctx, q.Name)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(guesthouses))
	for _, g := range guesthouses {
		rooms, err := s.repos.Rooms.ListByGuesthouse(ctx, g.ID)
		if err != nil {
			return nil, err
		}

		roomIDs := make([]int64, 0, len(rooms))
		for _, r := range rooms {
			roomIDs = append(roomIDs, r.ID)
		}

		reservations, err := s.repos.Reservations.ListByRoomIDs(ctx, roomIDs)
		if err != nil {
			return nil, err
		}

		byRoom := make(map[int64][]domain.Reservation, len(rooms))
		for _, res := range reservations {
			byRoom[res.RoomID] = append(byRoom[res.RoomID], res)
		}

		available := make([]int64, 0, len(rooms))
		for _, r := range rooms {
			if r.IsAvailable(byRoom[r.ID], q.CheckIn, q.CheckOut, q.People) {
				available = append(available, r.ID)
			}
		}
		if len(available) == 0 {
			continue
		}

		results = append(results, SearchResult{
			ID:            g.ID,
			Name:          g.Name,
			Address:       g.Address,
			Rating:        g.Rating,
			PhotoID:       g.PhotoID,
			RoomCount:     g.RoomCount,
			RoomAvailable: available,
		})
	}

	return results, nil
}
