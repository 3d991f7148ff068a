package repository

import (
	"context"
	"fmt"
	"slices"

	"deskhub/infras/otel"
	"deskhub/infras/postgres"
	"deskhub/internal/domains/tag/model"
	"deskhub/shared/constant"
	gDto "deskhub/shared/dto"
	"deskhub/shared/logger"
	gRepo "deskhub/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Tag interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tag, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByIDs(ctx context.Context, ids []int64) (int, error)
	GetByOffice(ctx context.Context, officeID string) ([]model.Tag, error)
	GetByOffices(ctx context.Context, officeIDs []string) (map[string][]model.Tag, error)
	SyncTx(ctx context.Context, sqltx *sqlx.Tx, officeID string, tagIDs []int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Tag]
	pivot gRepo.Repository[model.OfficeTag]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Tag {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tag](model.EntityName, model.TableName, model.FieldID, db, otl),
		pivot:      gRepo.NewRepository[model.OfficeTag](model.PivotEntityName, model.PivotTableName, model.PivotFieldOfficeID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// CountByIDs reports how many of the given tag ids exist. Callers compare the
// count against len(ids) to reject unknown tags.
func (repo *repositoryImpl) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tag.CountByIDs")
	defer scope.End()

	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s WHERE %s = ANY($1)", model.FieldID, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, query, pq.Array(ids))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count tags by ids: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) GetByOffice(ctx context.Context, officeID string) ([]model.Tag, error) {
	grouped, err := repo.GetByOffices(ctx, []string{officeID})
	if err != nil {
		return nil, err
	}

	return grouped[officeID], nil
}

type officeTagRow struct {
	OfficeID string `db:"office_id"`
	ID       int64  `db:"id"`
	Name     string `db:"name"`
}

// GetByOffices loads the tags of many offices in one round-trip, grouped by
// office id and ordered by pivot position.
func (repo *repositoryImpl) GetByOffices(ctx context.Context, officeIDs []string) (map[string][]model.Tag, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tag.GetByOffices")
	defer scope.End()

	grouped := map[string][]model.Tag{}
	if len(officeIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(
		"SELECT ot.%s AS office_id, t.%s AS id, t.%s AS name FROM %s ot JOIN %s t ON t.%s = ot.%s WHERE ot.%s = ANY($1) ORDER BY ot.%s, ot.%s",
		model.PivotFieldOfficeID, model.FieldID, model.FieldName,
		model.PivotTableName, model.TableName, model.FieldID, model.PivotFieldTagID,
		model.PivotFieldOfficeID, model.PivotFieldOfficeID, model.PivotFieldPosition,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []officeTagRow

	err := repo.db.Read.SelectContext(ctx, &rows, query, pq.Array(officeIDs))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get tags by offices: %w", err)
	}

	for _, row := range rows {
		grouped[row.OfficeID] = append(grouped[row.OfficeID], model.Tag{ID: row.ID, Name: row.Name})
	}

	return grouped, nil
}

// SyncTx replaces the tag set of an office inside the caller's transaction:
// rows for removed tags are deleted, rows for added tags inserted, and the
// position column of every remaining row rewritten to the supplied order.
func (repo *repositoryImpl) SyncTx(ctx context.Context, sqltx *sqlx.Tx, officeID string, tagIDs []int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tag.SyncTx")
	defer scope.End()

	current, err := repo.GetByOffice(ctx, officeID)
	if err != nil {
		return err
	}

	currentIDs := make([]int64, 0, len(current))
	for _, tag := range current {
		currentIDs = append(currentIDs, tag.ID)
	}

	var removed []int64
	for _, id := range currentIDs {
		if !slices.Contains(tagIDs, id) {
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.PivotFieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID},
				gDto.Filter{Field: model.PivotFieldTagID, Operator: gDto.FilterOperatorIn, Value: removed},
			},
		}

		if err = repo.pivot.DeleteTx(ctx, sqltx, filter); err != nil {
			return err
		}
	}

	var added []model.OfficeTag
	for position, id := range tagIDs {
		if slices.Contains(currentIDs, id) {
			continue
		}

		added = append(added, model.OfficeTag{OfficeID: officeID, TagID: id, Position: position})
	}

	if len(added) > 0 {
		if err = repo.pivot.InsertBulkTx(ctx, sqltx, added); err != nil {
			return err
		}
	}

	for position, id := range tagIDs {
		if !slices.Contains(currentIDs, id) {
			continue
		}

		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{ArgName: "f_office_id", Field: model.PivotFieldOfficeID, Operator: gDto.FilterOperatorEq, Value: officeID},
				gDto.Filter{ArgName: "f_tag_id", Field: model.PivotFieldTagID, Operator: gDto.FilterOperatorEq, Value: id},
			},
		}

		if err = repo.pivot.UpdateTx(ctx, sqltx, map[string]any{model.PivotFieldPosition: position}, filter); err != nil {
			return err
		}
	}

	return nil
}
