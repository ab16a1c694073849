package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tiara/infras/otel"
	"tiara/infras/postgres"
	"tiara/internal/domains/settings/model"
	"tiara/shared"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	"tiara/shared/logger"
	gRepo "tiara/shared/repository"
)

const blockDateQuery = `
	INSERT INTO blocked_dates (date, created_at, modified_at, created_by, modified_by)
	VALUES (:date, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (date) DO NOTHING`

const saveAlertQuery = `
	INSERT INTO site_alert (id, visible, message, created_at, modified_at, created_by, modified_by)
	VALUES (:id, :visible, :message, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (id) DO UPDATE SET
		visible = EXCLUDED.visible,
		message = EXCLUDED.message,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`

type Settings interface {
	GetBlockedDates(ctx context.Context) ([]model.BlockedDate, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
	BlockDate(ctx context.Context, model model.BlockedDate) error
	UnblockDate(ctx context.Context, date time.Time) error
	GetAlert(ctx context.Context) (model.SiteAlert, error)
	SaveAlert(ctx context.Context, model model.SiteAlert) error
}

type repositoryImpl struct {
	blocked gRepo.Repository[model.BlockedDate]
	alert   gRepo.Repository[model.SiteAlert]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		blocked: gRepo.NewRepository[model.BlockedDate](model.BlockedDateEntityName, model.BlockedDateTableName, model.FieldDate, db, otel),
		alert:   gRepo.NewRepository[model.SiteAlert](model.SiteAlertEntityName, model.SiteAlertTableName, model.FieldAlertID, db, otel),
		db:      db,
		otel:    otel,
	}
}

func (repo *repositoryImpl) GetBlockedDates(ctx context.Context) ([]model.BlockedDate, error) {
	params := gDto.QueryParams{SortBy: model.FieldDate, SortDir: "asc"}

	return repo.blocked.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *repositoryImpl) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	filter := shared.FilterByID(date.Format(constant.DateOnlyFormat), model.FieldDate, model.BlockedDateTableName)

	return repo.blocked.Exist(ctx, filter) //nolint:wrapcheck
}

// BlockDate adds the date to the blocked set. Blocking an already blocked
// date is a no-op.
func (repo *repositoryImpl) BlockDate(ctx context.Context, blocked model.BlockedDate) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.BlockDate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, blockDateQuery)

	_, err := repo.db.Write.NamedExecContext(ctx, blockDateQuery, blocked)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to block date: %w", err)
	}

	return nil
}

// UnblockDate removes the date from the blocked set. Unblocking a date that
// is not blocked is a no-op.
func (repo *repositoryImpl) UnblockDate(ctx context.Context, date time.Time) error {
	filter := shared.FilterByID(date.Format(constant.DateOnlyFormat), model.FieldDate, model.BlockedDateTableName)

	return repo.blocked.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAlert(ctx context.Context) (model.SiteAlert, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAlertID,
				Value:    model.SiteAlertSingletonID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SiteAlertTableName,
			},
		},
	}

	return repo.alert.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) SaveAlert(ctx context.Context, alert model.SiteAlert) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.SaveAlert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, saveAlertQuery)

	alert.ID = model.SiteAlertSingletonID

	_, err := repo.db.Write.NamedExecContext(ctx, saveAlertQuery, alert)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to save site alert: %w", err)
	}

	return nil
}
