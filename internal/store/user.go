package store

import (
	"context"

	"gorm.io/gorm"

	"shopcatalog/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *UserStore) Get(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *UserStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&cnt).Error
	return cnt > 0, err
}
