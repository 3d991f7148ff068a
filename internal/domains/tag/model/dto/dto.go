package dto

import "deskhub/internal/domains/tag/model"

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (t *TagResponse) FromModel(tag model.Tag) {
	t.ID = tag.ID
	t.Name = tag.Name
}

func FromModels(tags []model.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i].FromModel(tag)
	}

	return responses
}
