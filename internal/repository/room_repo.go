package repository

import (
	"context"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	GuesthouseID int64  `gorm:"column:guesthouse_id;index"`
	Name         string `gorm:"column:name"`
	Capacity     int    `gorm:"column:capacity"`
	Price        int64  `gorm:"column:price"`
	PhotoID      *int64 `gorm:"column:photo_id"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:           m.ID,
		GuesthouseID: m.GuesthouseID,
		Name:         m.Name,
		Capacity:     m.Capacity,
		Price:        m.Price,
		PhotoID:      m.PhotoID,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:           r.ID,
		GuesthouseID: r.GuesthouseID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		Price:        r.Price,
		PhotoID:      r.PhotoID,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// GetByIDForUpdate takes a row lock on the room so that concurrent
// reservation attempts for it serialize within their transactions. SQLite has
// no row locks and already serializes writers, so the clause is skipped there.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m roomModel
	tx := q.First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByGuesthouse(ctx context.Context, guesthouseID int64) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).
		Where("guesthouse_id = ?", guesthouseID).
		Order("id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) DeleteByGuesthouse(ctx context.Context, guesthouseID int64) error {
	return r.db.WithContext(ctx).
		Where("guesthouse_id = ?", guesthouseID).
		Delete(&roomModel{}).Error
}
