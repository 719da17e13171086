package store

import (
	"context"

	"gorm.io/gorm"

	"shopcatalog/internal/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *CategoryStore) Get(ctx context.Context, id uint) (models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return c, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *CategoryStore) Exists(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

// Update applies the given columns and returns the fresh row, so the
// caller sees the new updated_at.
func (s *CategoryStore) Update(ctx context.Context, id uint, fields map[string]any) (models.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&c).Updates(fields).Error; err != nil {
			return models.Category{}, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the category together with its products and their
// images in one transaction, so a concurrent reader never sees a
// product whose category is gone. Returns the blob paths of the deleted
// images for cleanup after commit.
func (s *CategoryStore) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return translate(err)
		}

		var productIDs []uint
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			var images []models.ProductImage
			if err := tx.Where("product_id IN ?", productIDs).Find(&images).Error; err != nil {
				return err
			}
			for _, im := range images {
				paths = append(paths, im.Image)
			}
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
