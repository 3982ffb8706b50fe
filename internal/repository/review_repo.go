package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ReservationID int64     `gorm:"column:reservation_id;uniqueIndex"`
	Rating        int       `gorm:"column:rating"`
	Comment       *string   `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		Rating:        m.Rating,
		Comment:       comment,
		CreatedAt:     m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}

	return reviewModel{
		ID:            rv.ID,
		ReservationID: rv.ReservationID,
		Rating:        rv.Rating,
		Comment:       comment,
		CreatedAt:     rv.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ExistsByReservation(ctx context.Context, reservationID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("reservation_id = ?", reservationID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Review, error) {
	var rows []reviewModel
	q := `
SELECT rv.*
FROM reviews rv
JOIN reservations res ON res.id = rv.reservation_id
JOIN rooms r          ON r.id = res.room_id
WHERE r.guesthouse_id = ?
ORDER BY rv.created_at DESC, rv.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q, guesthouseID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) RatingsByGuesthouse(ctx context.Context, guesthouseID int64) ([]int, error) {
	var ratings []int
	q := `
SELECT rv.rating
FROM reviews rv
JOIN reservations res ON res.id = rv.reservation_id
JOIN rooms r          ON r.id = res.room_id
WHERE r.guesthouse_id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, guesthouseID).Scan(&ratings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ratings, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&reviewModel{}, id).Error
}

func (r *ReviewRepository) DeleteByReservation(ctx context.Context, reservationID int64) error {
	return r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&reviewModel{}).Error
}

func (r *ReviewRepository) DeleteByRoomIDs(ctx context.Context, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("reservation_id IN (SELECT id FROM reservations WHERE room_id IN ?)", roomIDs).
		Delete(&reviewModel{}).Error
}
