package dto

import (
	"mime/multipart"

	"deskhub/internal/domains/image/model"
)

// StoreImageRequest carries the single multipart file of an image upload.
// Size limit is in kilobytes.
type StoreImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5000"`
	ImageFile multipart.File        `json:"-"`
}

type ImageResponse struct {
	ID       string `json:"id"`
	OfficeID string `json:"office_id"`
	Path     string `json:"path"`
}

func (r *ImageResponse) FromModel(image model.Image) {
	r.ID = image.ID
	r.OfficeID = image.OfficeID
	r.Path = image.Path
}

func FromModels(images []model.Image) []ImageResponse {
	responses := make([]ImageResponse, len(images))
	for i, image := range images {
		responses[i].FromModel(image)
	}

	return responses
}
