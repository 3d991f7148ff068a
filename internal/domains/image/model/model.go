package model

import "deskhub/shared/model"

const (
	TableName  = "images"
	EntityName = "image"

	FieldID       = "id"
	FieldOfficeID = "office_id"
	FieldPath     = "path"
)

// Image is a stored office photo. Path is the public URL of the object in
// the bucket.
type Image struct {
	ID       string `db:"id"`
	OfficeID string `db:"office_id"`
	Path     string `db:"path"`
	model.Metadata
}
