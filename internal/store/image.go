package store

import (
	"context"

	"gorm.io/gorm"

	"shopcatalog/internal/models"
)

type ImageStore struct {
	db *gorm.DB
}

func (s *ImageStore) Create(ctx context.Context, im *models.ProductImage) error {
	return s.db.WithContext(ctx).Create(im).Error
}

func (s *ImageStore) Get(ctx context.Context, id uint) (models.ProductImage, error) {
	var im models.ProductImage
	if err := s.db.WithContext(ctx).First(&im, id).Error; err != nil {
		return models.ProductImage{}, translate(err)
	}
	return im, nil
}

func (s *ImageStore) List(ctx context.Context) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := s.db.WithContext(ctx).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Replace points the row at a new blob path and returns the updated row
// together with the old path, which the caller removes from disk.
func (s *ImageStore) Replace(ctx context.Context, id uint, path string) (models.ProductImage, string, error) {
	var im models.ProductImage
	if err := s.db.WithContext(ctx).First(&im, id).Error; err != nil {
		return models.ProductImage{}, "", translate(err)
	}
	old := im.Image
	if err := s.db.WithContext(ctx).Model(&im).Update("image", path).Error; err != nil {
		return models.ProductImage{}, "", err
	}
	return im, old, nil
}

// Delete removes the row and returns the blob path for cleanup.
func (s *ImageStore) Delete(ctx context.Context, id uint) (string, error) {
	var im models.ProductImage
	if err := s.db.WithContext(ctx).First(&im, id).Error; err != nil {
		return "", translate(err)
	}
	if err := s.db.WithContext(ctx).Delete(&im).Error; err != nil {
		return "", err
	}
	return im.Image, nil
}
