package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	RoomID       int64     `gorm:"column:room_id;index"`
	GuestID      int64     `gorm:"column:guest_id;index"`
	CheckInDate  time.Time `gorm:"column:check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date"`
	PeopleCount  int       `gorm:"column:people_count"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:           m.ID,
		RoomID:       m.RoomID,
		GuestID:      m.GuestID,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: m.CheckOutDate,
		PeopleCount:  m.PeopleCount,
		CreatedAt:    m.CreatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:           r.ID,
		RoomID:       r.RoomID,
		GuestID:      r.GuestID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		PeopleCount:  r.PeopleCount,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&reservationModel{}, id).Error
}

func (r *ReservationRepository) DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("room_id IN ?", roomIDs).
		Delete(&reservationModel{}).Error
}

func (r *ReservationRepository) ListByRoomIDs(ctx context.Context, roomIDs []int64) ([]domain.Reservation, error) {
	if len(roomIDs) == 0 {
		return []domain.Reservation{}, nil
	}

	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("room_id IN ?", roomIDs).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID int64) ([]GuestReservationRow, error) {
	var rows []GuestReservationRow
	q := `
SELECT res.id,
       res.room_id,
       g.id   AS guesthouse_id,
       g.name AS guesthouse_name,
       res.check_in_date,
       res.check_out_date,
       res.people_count,
       rv.id      AS review_id,
       rv.comment AS review_comment
FROM reservations res
JOIN rooms r        ON r.id = res.room_id
JOIN guesthouses g  ON g.id = r.guesthouse_id
LEFT JOIN reviews rv ON rv.reservation_id = res.id
WHERE res.guest_id = ?
ORDER BY res.check_in_date ASC, res.id ASC
`
	tx := r.db.WithContext(ctx).Raw(q, guestID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReservationRepository) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]HostReservationRow, error) {
	var rows []HostReservationRow
	q := `
SELECT res.id,
       res.room_id,
       r.name     AS room_name,
       u.id       AS guest_id,
       u.username AS guest_username,
       res.check_in_date,
       res.check_out_date,
       res.people_count
FROM reservations res
JOIN rooms r ON r.id = res.room_id
JOIN users u ON u.id = res.guest_id
WHERE r.guesthouse_id = ?
ORDER BY res.check_in_date ASC, res.id ASC
`
	tx := r.db.WithContext(ctx).Raw(q, guesthouseID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// SumPeopleForOverlap totals people counts of reservations on the room whose
// [check_in, check_out) range intersects the requested one. The boundary is
// exclusive: a stay ending the day another starts does not count against it.
func (r *ReservationRepository) SumPeopleForOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int, error) {
	var total int
	q := `
SELECT COALESCE(SUM(people_count), 0)
FROM reservations
WHERE room_id = ?
  AND check_in_date < ?
  AND check_out_date > ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomID, checkOut, checkIn).Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return total, nil
}
