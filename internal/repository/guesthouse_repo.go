package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type GuesthouseRepository struct {
	db *gorm.DB
}

func NewGuesthouseRepository(db *gorm.DB) *GuesthouseRepository {
	return &GuesthouseRepository{db: db}
}

type guesthouseModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	HostID      int64     `gorm:"column:host_id;index"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Address     string    `gorm:"column:address"`
	PhoneNumber *string   `gorm:"column:phone_number"`
	PhotoID     *int64    `gorm:"column:photo_id"`
	RoomCount   int       `gorm:"column:room_count"`
	Rating      float64   `gorm:"column:rating"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (guesthouseModel) TableName() string { return "guesthouses" }

func toDomainGuesthouse(m guesthouseModel) *domain.Guesthouse {
	var description, phone string
	if m.Description != nil {
		description = *m.Description
	}
	if m.PhoneNumber != nil {
		phone = *m.PhoneNumber
	}

	return &domain.Guesthouse{
		ID:          m.ID,
		HostID:      m.HostID,
		Name:        m.Name,
		Description: description,
		Address:     m.Address,
		PhoneNumber: phone,
		PhotoID:     m.PhotoID,
		RoomCount:   m.RoomCount,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toGuesthouseModel(g *domain.Guesthouse) guesthouseModel {
	var description, phone *string
	if g.Description != "" {
		v := g.Description
		description = &v
	}
	if g.PhoneNumber != "" {
		v := g.PhoneNumber
		phone = &v
	}

	return guesthouseModel{
		ID:          g.ID,
		HostID:      g.HostID,
		Name:        g.Name,
		Description: description,
		Address:     g.Address,
		PhoneNumber: phone,
		PhotoID:     g.PhotoID,
		RoomCount:   g.RoomCount,
		Rating:      g.Rating,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (r *GuesthouseRepository) Create(ctx context.Context, g *domain.Guesthouse) error {
	m := toGuesthouseModel(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuesthouse(m)
	return nil
}

func (r *GuesthouseRepository) GetByID(ctx context.Context, id int64) (*domain.Guesthouse, error) {
	var m guesthouseModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuesthouse(m), nil
}

func (r *GuesthouseRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Guesthouse, error) {
	var rows []guesthouseModel
	tx := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Guesthouse, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGuesthouse(m))
	}
	return out, nil
}

// ListByName returns guesthouses whose name contains the given fragment,
// case-insensitively. An empty fragment matches everything.
func (r *GuesthouseRepository) ListByName(ctx context.Context, name string) ([]domain.Guesthouse, error) {
	q := r.db.WithContext(ctx).Model(&guesthouseModel{})
	if name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	var rows []guesthouseModel
	tx := q.Order("id ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Guesthouse, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGuesthouse(m))
	}
	return out, nil
}

func (r *GuesthouseRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&guesthouseModel{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *GuesthouseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&guesthouseModel{}, id).Error
}
