package dto

import (
	"database/sql"

	imageModel "deskhub/internal/domains/image/model"
	imageDto "deskhub/internal/domains/image/model/dto"
	"deskhub/internal/domains/office/model"
	tagModel "deskhub/internal/domains/tag/model"
	tagDto "deskhub/internal/domains/tag/model/dto"
	userModel "deskhub/internal/domains/user/model"
	userDto "deskhub/internal/domains/user/model/dto"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	gModel "deskhub/shared/model"
	"deskhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateOfficeRequest struct {
	Title           string   `json:"title"            validate:"required,max=255"`
	Description     string   `json:"description"      validate:"required"`
	AddressLine1    string   `json:"address_line1"    validate:"required,max=255"`
	AddressLine2    *string  `json:"address_line2"    validate:"omitempty,max=255"`
	Lat             *float64 `json:"lat"              validate:"required,latitude"`
	Lng             *float64 `json:"lng"              validate:"required,longitude"`
	PricePerDay     *int     `json:"price_per_day"    validate:"required,min=0"`
	MonthlyDiscount *int     `json:"monthly_discount" validate:"omitempty,min=0,max=90"`
	Hidden          *bool    `json:"hidden"           validate:"omitempty"`
	Tags            []int64  `json:"tags"             validate:"omitempty,dive,min=1"`
}

func (c *CreateOfficeRequest) ToModel(userID string) model.Office {
	addressLine2 := sql.NullString{}
	if c.AddressLine2 != nil {
		addressLine2 = sql.NullString{String: *c.AddressLine2, Valid: true}
	}

	monthlyDiscount := 0
	if c.MonthlyDiscount != nil {
		monthlyDiscount = *c.MonthlyDiscount
	}

	hidden := false
	if c.Hidden != nil {
		hidden = *c.Hidden
	}

	return model.Office{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           c.Title,
		Description:     c.Description,
		AddressLine1:    c.AddressLine1,
		AddressLine2:    addressLine2,
		Lat:             *c.Lat,
		Lng:             *c.Lng,
		PricePerDay:     *c.PricePerDay,
		MonthlyDiscount: monthlyDiscount,
		Hidden:          hidden,
		ApprovalStatus:  model.ApprovalStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// UpdateOfficeRequest is a partial update: nil pointer fields keep the
// persisted value. Tags nil keeps the current tag set, an empty slice
// clears it.
type UpdateOfficeRequest struct {
	Title           *string  `json:"title"            validate:"omitempty,max=255"`
	Description     *string  `json:"description"      validate:"omitempty"`
	AddressLine1    *string  `json:"address_line1"    validate:"omitempty,max=255"`
	AddressLine2    *string  `json:"address_line2"    validate:"omitempty,max=255"`
	Lat             *float64 `json:"lat"              validate:"omitempty,latitude"`
	Lng             *float64 `json:"lng"              validate:"omitempty,longitude"`
	PricePerDay     *int     `json:"price_per_day"    validate:"omitempty,min=0"`
	MonthlyDiscount *int     `json:"monthly_discount" validate:"omitempty,min=0,max=90"`
	Hidden          *bool    `json:"hidden"           validate:"omitempty"`
	Tags            []int64  `json:"tags"             validate:"omitempty,dive,min=1"`
}

// Changes maps the set fields to their column values and reports whether a
// critical field (lat, lng, price per day) differs from the persisted office.
func (u *UpdateOfficeRequest) Changes(current model.Office, userID string) (map[string]any, bool) {
	changes := map[string]any{}
	critical := false

	if u.Title != nil {
		changes[model.FieldTitle] = *u.Title
	}

	if u.Description != nil {
		changes[model.FieldDescription] = *u.Description
	}

	if u.AddressLine1 != nil {
		changes[model.FieldAddressLine1] = *u.AddressLine1
	}

	if u.AddressLine2 != nil {
		changes[model.FieldAddressLine2] = *u.AddressLine2
	}

	if u.Lat != nil {
		changes[model.FieldLat] = *u.Lat

		if *u.Lat != current.Lat {
			critical = true
		}
	}

	if u.Lng != nil {
		changes[model.FieldLng] = *u.Lng

		if *u.Lng != current.Lng {
			critical = true
		}
	}

	if u.PricePerDay != nil {
		changes[model.FieldPricePerDay] = *u.PricePerDay

		if *u.PricePerDay != current.PricePerDay {
			critical = true
		}
	}

	if u.MonthlyDiscount != nil {
		changes[model.FieldMonthlyDiscount] = *u.MonthlyDiscount
	}

	if u.Hidden != nil {
		changes[model.FieldHidden] = *u.Hidden
	}

	if critical {
		changes[model.FieldApprovalStatus] = model.ApprovalStatusPending
	}

	changes[constant.FieldModifiedAt] = timezone.Now()
	changes[constant.FieldModifiedBy] = userID

	return changes, critical
}

// ListOfficesQuery holds the recognised filter parameters of the office
// listing. Lat and Lng are only honoured together.
type ListOfficesQuery struct {
	UserID    string
	VisitorID string
	Lat       *float64
	Lng       *float64
}

// OfficeRelations bundles the eager-loaded associations of one office.
type OfficeRelations struct {
	Tags              []tagModel.Tag
	Images            []imageModel.Image
	Owner             userModel.User
	ActiveReservation int
}

type OfficeResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"user_id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	AddressLine1      string                  `json:"address_line1"`
	AddressLine2      *string                 `json:"address_line2"`
	Lat               float64                 `json:"lat"`
	Lng               float64                 `json:"lng"`
	PricePerDay       int                     `json:"price_per_day"`
	MonthlyDiscount   int                     `json:"monthly_discount"`
	Hidden            bool                    `json:"hidden"`
	ApprovalStatus    string                  `json:"approval_status"`
	FeaturedImageID   *string                 `json:"featured_image_id"`
	ReservationsCount int                     `json:"reservations_count"`
	Tags              []tagDto.TagResponse    `json:"tags"`
	Images            []imageDto.ImageResponse `json:"images"`
	User              userDto.UserResponse    `json:"user"`
	gDto.Metadata
}

func (r *OfficeResponse) FromModel(office model.Office, relations OfficeRelations) {
	r.ID = office.ID
	r.UserID = office.UserID
	r.Title = office.Title
	r.Description = office.Description
	r.AddressLine1 = office.AddressLine1
	r.Lat = office.Lat
	r.Lng = office.Lng
	r.PricePerDay = office.PricePerDay
	r.MonthlyDiscount = office.MonthlyDiscount
	r.Hidden = office.Hidden
	r.ApprovalStatus = office.ApprovalStatus

	if office.AddressLine2.Valid {
		addressLine2 := office.AddressLine2.String
		r.AddressLine2 = &addressLine2
	}

	if office.FeaturedImageID.Valid {
		featured := office.FeaturedImageID.String
		r.FeaturedImageID = &featured
	}

	r.ReservationsCount = relations.ActiveReservation
	r.Tags = tagDto.FromModels(relations.Tags)
	r.Images = imageDto.FromModels(relations.Images)
	r.User.FromModel(relations.Owner)
	r.Metadata.FromModel(office.Metadata)
}

type GetOfficesResponse struct {
	Offices []OfficeResponse
	Meta    gDto.PageMeta
	Links   gDto.PageLinks
}

func (r *GetOfficesResponse) FromModels(offices []model.Office, relations map[string]OfficeRelations, meta gDto.PageMeta, links gDto.PageLinks) {
	r.Meta = meta
	r.Links = links

	r.Offices = make([]OfficeResponse, len(offices))
	for i, office := range offices {
		r.Offices[i].FromModel(office, relations[office.ID])
	}
}
