package repository

import (
	"context"

	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/user/model"
	gDto "deskhub/shared/dto"
	gRepo "deskhub/shared/repository"
)

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]model.User, error)
	GetAdmins(ctx context.Context) ([]model.User, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}

	return repo.Get(ctx, filter)
}

func (repo *repositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]model.User, error) {
	users := map[string]model.User{}
	if len(ids) == 0 {
		return users, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: ids},
		},
	}

	all, err := repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, err
	}

	for _, user := range all {
		users[user.ID] = user
	}

	return users, nil
}

func (repo *repositoryImpl) GetAdmins(ctx context.Context) ([]model.User, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldIsAdmin, Operator: gDto.FilterOperatorEq, Value: true},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: "ASC"}, filter)
}
