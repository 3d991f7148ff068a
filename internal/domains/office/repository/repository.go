package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/office/model"
	dto "deskhub/internal/domains/office/model/dto"
	reservationModel "deskhub/internal/domains/reservation/model"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/logger"
	gRepo "deskhub/shared/repository"

	"github.com/jmoiron/sqlx"
)

// distanceExpr orders by great-circle distance in kilometres from the
// caller-supplied point.
const distanceExpr = "(6371 * acos(" +
	"cos(radians(:lat)) * cos(radians(lat)) * cos(radians(lng) - radians(:lng)) + " +
	"sin(radians(:lat)) * sin(radians(lat))))"

type Office interface {
	Insert(ctx context.Context, model model.Office) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Office) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Office, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByID(ctx context.Context, id string) (model.Office, error)
	UpdateByIDTx(ctx context.Context, sqltx *sqlx.Tx, id string, changes map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, params gDto.QueryParams, query dto.ListOfficesQuery, visibleOnly bool) ([]model.Office, error)
	CountList(ctx context.Context, query dto.ListOfficesQuery, visibleOnly bool) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Office]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Office {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Office](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func byID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Office, error) {
	return repo.Get(ctx, byID(id))
}

func (repo *repositoryImpl) UpdateByIDTx(ctx context.Context, sqltx *sqlx.Tx, id string, changes map[string]any) error {
	return repo.UpdateTx(ctx, sqltx, changes, byID(id))
}

func (repo *repositoryImpl) DeleteByID(ctx context.Context, id string) error {
	return repo.Delete(ctx, byID(id))
}

// listClauses builds the WHERE conditions and named args shared by List and
// CountList. The visitor filter is an EXISTS subquery, so one office never
// appears twice however many reservations the visitor holds on it.
func listClauses(query dto.ListOfficesQuery, visibleOnly bool) ([]string, map[string]any) {
	conditions := []string{}
	args := map[string]any{}

	if visibleOnly {
		conditions = append(conditions, fmt.Sprintf("%s = FALSE", model.FieldHidden))
		conditions = append(conditions, fmt.Sprintf("%s = :approval_status", model.FieldApprovalStatus))
		args["approval_status"] = model.ApprovalStatusApproved
	}

	if query.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("%s = :owner_id", model.FieldUserID))
		args["owner_id"] = query.UserID
	}

	if query.VisitorID != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s r WHERE r.%s = %s.%s AND r.%s = :visitor_id)",
			reservationModel.TableName, reservationModel.FieldOfficeID,
			model.TableName, model.FieldID, reservationModel.FieldUserID,
		))
		args["visitor_id"] = query.VisitorID
	}

	return conditions, args
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, query dto.ListOfficesQuery, visibleOnly bool) ([]model.Office, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".office.List")
	defer scope.End()

	conditions, args := listClauses(query, visibleOnly)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	ordering := fmt.Sprintf(" ORDER BY %s ASC", model.FieldID)
	if query.Lat != nil && query.Lng != nil {
		ordering = fmt.Sprintf(" ORDER BY %s ASC, %s ASC", distanceExpr, model.FieldID)
		args["lat"] = *query.Lat
		args["lng"] = *query.Lng
	}

	pagination := ""
	if params.Page > 0 && params.Limit > 0 {
		pagination = " LIMIT :limit OFFSET :offset"
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
	}

	sqlQuery := fmt.Sprintf("SELECT %s.* FROM %s%s%s%s", model.TableName, model.TableName, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var offices []model.Office

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (office list): %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &offices, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	return offices, nil
}

func (repo *repositoryImpl) CountList(ctx context.Context, query dto.ListOfficesQuery, visibleOnly bool) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".office.CountList")
	defer scope.End()

	conditions, args := listClauses(query, visibleOnly)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	sqlQuery := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", model.TableName, model.FieldID, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, sqlQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (office count): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count offices: %w", err)
	}

	return count, nil
}
