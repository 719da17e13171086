package dto

import "shopcatalog/internal/models"

// ImageResponse — изображения пишутся через multipart, поэтому
// input-схемы здесь нет, только ответ.
type ImageResponse struct {
	ID      uint   `json:"id"`
	Image   string `json:"image"`
	Product uint   `json:"product"`
}

func NewImageResponse(im models.ProductImage) ImageResponse {
	return ImageResponse{
		ID:      im.ID,
		Image:   im.Image,
		Product: im.ProductID,
	}
}

func NewImageList(images []models.ProductImage) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, im := range images {
		out = append(out, NewImageResponse(im))
	}
	return out
}
