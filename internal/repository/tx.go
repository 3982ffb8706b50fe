package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork runs a function within a single database transaction. Every
// store handed to the callback is bound to that transaction; if the callback
// returns an error nothing is committed.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(r Repos) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Within(ctx context.Context, fn func(r Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
