package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLoginID(ctx context.Context, loginID string) (*domain.User, error)
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

// GuesthouseStore persists guesthouses.
type GuesthouseStore interface {
	Create(ctx context.Context, g *domain.Guesthouse) error
	GetByID(ctx context.Context, id int64) (*domain.Guesthouse, error)
	ListByHost(ctx context.Context, hostID int64) ([]domain.Guesthouse, error)
	ListByName(ctx context.Context, name string) ([]domain.Guesthouse, error)
	UpdateRating(ctx context.Context, id int64, rating float64) error
	Delete(ctx context.Context, id int64) error
}

// RoomStore persists rooms.
type RoomStore interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	// GetByIDForUpdate locks the room row for the rest of the transaction so
	// concurrent capacity checks for the same room serialize.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error)
	ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Room, error)
	DeleteByGuesthouse(ctx context.Context, guesthouseID int64) error
}

// GuestReservationRow is a guest's reservation annotated with its guesthouse
// and any attached review.
type GuestReservationRow struct {
	ID             int64     `gorm:"column:id"`
	RoomID         int64     `gorm:"column:room_id"`
	GuesthouseID   int64     `gorm:"column:guesthouse_id"`
	GuesthouseName string    `gorm:"column:guesthouse_name"`
	CheckInDate    time.Time `gorm:"column:check_in_date"`
	CheckOutDate   time.Time `gorm:"column:check_out_date"`
	PeopleCount    int       `gorm:"column:people_count"`
	ReviewID       *int64    `gorm:"column:review_id"`
	ReviewComment  *string   `gorm:"column:review_comment"`
}

// HostReservationRow is a reservation as the owning host sees it, annotated
// with the room name and guest identity.
type HostReservationRow struct {
	ID            int64     `gorm:"column:id"`
	RoomID        int64     `gorm:"column:room_id"`
	RoomName      string    `gorm:"column:room_name"`
	GuestID       int64     `gorm:"column:guest_id"`
	GuestUsername string    `gorm:"column:guest_username"`
	CheckInDate   time.Time `gorm:"column:check_in_date"`
	CheckOutDate  time.Time `gorm:"column:check_out_date"`
	PeopleCount   int       `gorm:"column:people_count"`
}

// ReservationStore persists reservations.
type ReservationStore interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error
	ListByRoomIDs(ctx context.Context, roomIDs []int64) ([]domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID int64) ([]GuestReservationRow, error)
	ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]HostReservationRow, error)
	SumPeopleForOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ExistsByReservation(ctx context.Context, reservationID int64) (bool, error)
	ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Review, error)
	RatingsByGuesthouse(ctx context.Context, guesthouseID int64) ([]int, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
	DeleteByReservation(ctx context.Context, reservationID int64) error
	DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error
}

// Repos bundles every store over one database handle (or one transaction).
type Repos struct {
	Users        UserStore
	Guesthouses  GuesthouseStore
	Rooms        RoomStore
	Reservations ReservationStore
	Reviews      ReviewStore
}

func New(db *gorm.DB) Repos {
	return Repos{
		Users:        NewUserRepository(db),
		Guesthouses:  NewGuesthouseRepository(db),
		Rooms:        NewRoomRepository(db),
		Reservations: NewReservationRepository(db),
		Reviews:      NewReviewRepository(db),
	}
}
