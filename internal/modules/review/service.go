package review

import (
	"context"
	"errors"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	repos repository.Repos
	uow   repository.UnitOfWork
}

func NewService(repos repository.Repos, uow repository.UnitOfWork) *Service {
	return &Service{repos: repos, uow: uow}
}

// Create stores a review for a checked-out reservation and recomputes its
// guesthouse's rating in the same transaction. One review per reservation:
// an explicit existence check backed by the unique index on reservation_id.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	rv := &domain.Review{
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now(),
	}

	err := s.uow.Within(ctx, func(r repository.Repos) error {
		res, err := r.Reservations.GetByID(ctx, req.ReservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if res.GuestID != userID {
			return ErrForbidden
		}

		if domain.BeforeDay(time.Now(), res.CheckOutDate) {
			return ErrNotCheckedOut
		}

		exists, err := r.Reviews.ExistsByReservation(ctx, req.ReservationID)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict
		}

		if err := r.Reviews.Create(ctx, rv); err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return err
		}

		return recomputeRating(ctx, r, res.RoomID)
	})
	if err != nil {
		return nil, err
	}

	return rv, nil
}

// Update rewrites the guest's own review. The guesthouse rating is left
// untouched, matching the behavior review creation established it against.
func (s *Service) Update(ctx context.Context, userID, reviewID int64, req UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	var updated *domain.Review
	err := s.uow.Within(ctx, func(r repository.Repos) error {
		rv, err := s.ownReview(ctx, r, userID, reviewID)
		if err != nil {
			return err
		}

		rv.Rating = req.Rating
		rv.Comment = req.Comment
		if err := r.Reviews.Update(ctx, rv); err != nil {
			return err
		}
		updated = rv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, reviewID int64) error {
	return s.uow.Within(ctx, func(r repository.Repos) error {
		rv, err := s.ownReview(ctx, r, userID, reviewID)
		if err != nil {
			return err
		}
		return r.Reviews.Delete(ctx, rv.ID)
	})
}

func (s *Service) GetByID(ctx context.Context, reviewID int64) (*domain.Review, error) {
	rv, err := s.repos.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// ownReview loads a review and verifies the caller is the guest of its
// reservation.
func (s *Service) ownReview(ctx context.Context, r repository.Repos, userID, reviewID int64) (*domain.Review, error) {
	rv, err := r.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res, err := r.Reservations.GetByID(ctx, rv.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if res.GuestID != userID {
		return nil, ErrForbidden
	}

	return rv, nil
}

// recomputeRating averages every review attached to the room's guesthouse and
// persists the result (0.0 when no reviews remain).
func recomputeRating(ctx context.Context, r repository.Repos, roomID int64) error {
	room, err := r.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}

	ratings, err := r.Reviews.RatingsByGuesthouse(ctx, room.GuesthouseID)
	if err != nil {
		return err
	}

	return r.Guesthouses.UpdateRating(ctx, room.GuesthouseID, domain.AverageRating(ratings))
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
