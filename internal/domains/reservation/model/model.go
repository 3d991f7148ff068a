package model

import (
	"time"

	"deskhub/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID       = "id"
	FieldOfficeID = "office_id"
	FieldUserID   = "user_id"
	FieldStatus   = "status"

	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID        string    `db:"id"`
	OfficeID  string    `db:"office_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	model.Metadata
}
