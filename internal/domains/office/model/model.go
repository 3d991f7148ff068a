package model

import (
	"database/sql"

	"deskhub/shared/model"
)

const (
	TableName  = "offices"
	EntityName = "office"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldAddressLine1    = "address_line1"
	FieldAddressLine2    = "address_line2"
	FieldLat             = "lat"
	FieldLng             = "lng"
	FieldPricePerDay     = "price_per_day"
	FieldMonthlyDiscount = "monthly_discount"
	FieldHidden          = "hidden"
	FieldApprovalStatus  = "approval_status"
	FieldFeaturedImageID = "featured_image_id"

	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
)

type Office struct {
	ID              string          `db:"id"`
	UserID          string          `db:"user_id"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	AddressLine1    string          `db:"address_line1"`
	AddressLine2    sql.NullString  `db:"address_line2"`
	Lat             float64         `db:"lat"`
	Lng             float64         `db:"lng"`
	PricePerDay     int             `db:"price_per_day"`
	MonthlyDiscount int             `db:"monthly_discount"`
	Hidden          bool            `db:"hidden"`
	ApprovalStatus  string          `db:"approval_status"`
	FeaturedImageID sql.NullString  `db:"featured_image_id"`
	model.Metadata
}
