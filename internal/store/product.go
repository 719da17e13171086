package store

import (
	"context"

	"gorm.io/gorm"

	"shopcatalog/internal/models"
)

type ProductStore struct {
	db *gorm.DB
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// Get loads the product with its category and images, the shape the
// read schema needs.
func (s *ProductStore) Get(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		First(&p, id).Error
	if err != nil {
		return models.Product{}, translate(err)
	}
	return p, nil
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (s *ProductStore) Update(ctx context.Context, id uint, fields map[string]any) (models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Product{}, translate(err)
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&p).Updates(fields).Error; err != nil {
			return models.Product{}, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the product and its images atomically and returns the
// image blob paths for cleanup after commit.
func (s *ProductStore) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, id).Error; err != nil {
			return translate(err)
		}

		var images []models.ProductImage
		if err := tx.Where("product_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, im := range images {
			paths = append(paths, im.Image)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
