package repository

import (
	"context"
	"fmt"

	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/reservation/model"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/logger"
	gRepo "deskhub/shared/repository"

	"github.com/lib/pq"
)

type Reservation interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistActiveByOffice(ctx context.Context, officeID string) (bool, error)
	CountActiveByOffices(ctx context.Context, officeIDs []string) (map[string]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) ExistActiveByOffice(ctx context.Context, officeID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusActive},
		},
	}

	return repo.Exist(ctx, filter)
}

type activeCountRow struct {
	OfficeID string `db:"office_id"`
	Count    int    `db:"count"`
}

// CountActiveByOffices returns the active reservation count per office in a
// single grouped query. Offices without active reservations are absent from
// the result map.
func (repo *repositoryImpl) CountActiveByOffices(ctx context.Context, officeIDs []string) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountActiveByOffices")
	defer scope.End()

	counts := map[string]int{}
	if len(officeIDs) == 0 {
		return counts, nil
	}

	query := fmt.Sprintf(
		"SELECT %s, COUNT(%s) AS count FROM %s WHERE %s = ANY($1) AND %s = $2 GROUP BY %s",
		model.FieldOfficeID, model.FieldID, model.TableName,
		model.FieldOfficeID, model.FieldStatus, model.FieldOfficeID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []activeCountRow

	err := repo.db.Read.SelectContext(ctx, &rows, query, pq.Array(officeIDs), model.StatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count active reservations: %w", err)
	}

	for _, row := range rows {
		counts[row.OfficeID] = row.Count
	}

	return counts, nil
}
