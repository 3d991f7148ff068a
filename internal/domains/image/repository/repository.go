package repository

import (
	"context"

	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/image/model"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	gRepo "deskhub/shared/repository"
)

type Image interface {
	Insert(ctx context.Context, model model.Image) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Image, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Image, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByOffice(ctx context.Context, imageID, officeID string) (model.Image, error)
	GetAllByOffices(ctx context.Context, officeIDs []string) (map[string][]model.Image, error)
	CountByOffice(ctx context.Context, officeID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Image]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Image {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) GetByOffice(ctx context.Context, imageID, officeID string) (model.Image, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: imageID},
			gDto.Filter{Field: model.FieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID},
		},
	}

	return repo.Get(ctx, filter)
}

// GetAllByOffices loads the images of many offices at once, grouped by
// office id, insertion order preserved per office.
func (repo *repositoryImpl) GetAllByOffices(ctx context.Context, officeIDs []string) (map[string][]model.Image, error) {
	grouped := map[string][]model.Image{}
	if len(officeIDs) == 0 {
		return grouped, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOfficeID, Operator: gDto.FilterOperatorIn, Value: officeIDs},
		},
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: "ASC"}

	images, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	for _, image := range images {
		grouped[image.OfficeID] = append(grouped[image.OfficeID], image)
	}

	return grouped, nil
}

func (repo *repositoryImpl) CountByOffice(ctx context.Context, officeID string) (int, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID},
		},
	}

	return repo.Count(ctx, filter)
}
