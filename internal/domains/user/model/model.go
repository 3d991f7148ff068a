package model

import "deskhub/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldIsAdmin = "is_admin"
)

type User struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	IsAdmin bool   `db:"is_admin"`
	model.Metadata
}
