package repository

import (
	"context"
	"time"

	"guesthouse/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Username    string    `gorm:"column:username"`
	LoginID     string    `gorm:"column:login_id;uniqueIndex"`
	Password    string    `gorm:"column:password"`
	Role        string    `gorm:"column:role"`
	PhoneNumber *string   `gorm:"column:phone_number"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone string
	if m.PhoneNumber != nil {
		phone = *m.PhoneNumber
	}

	return &domain.User{
		ID:          m.ID,
		Username:    m.Username,
		LoginID:     m.LoginID,
		Password:    m.Password,
		Role:        domain.Role(m.Role),
		PhoneNumber: phone,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var phone *string
	if u.PhoneNumber != "" {
		v := u.PhoneNumber
		phone = &v
	}

	return userModel{
		ID:          u.ID,
		Username:    u.Username,
		LoginID:     u.LoginID,
		Password:    u.Password,
		Role:        string(u.Role),
		PhoneNumber: phone,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("login_id = ?", loginID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("login_id = ?", loginID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}
