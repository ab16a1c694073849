package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tiara/infras/otel"
	"tiara/infras/postgres"
	"tiara/internal/domains/guest/model"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	"tiara/shared/logger"
	gRepo "tiara/shared/repository"
)

const upsertProfileQuery = `
	INSERT INTO guests (email, name, phone, visits, notes, first_visit, last_booked, last_visit, created_at, modified_at, created_by, modified_by)
	VALUES (:email, :name, :phone, :visits, :notes, :first_visit, :last_booked, :last_visit, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (email) DO UPDATE SET
		name = EXCLUDED.name,
		phone = EXCLUDED.phone,
		last_booked = EXCLUDED.last_booked,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`

const recordVisitQuery = `
	INSERT INTO guests (email, name, phone, visits, notes, first_visit, last_booked, last_visit, created_at, modified_at, created_by, modified_by)
	VALUES (:email, :name, :phone, 1, :notes, :first_visit, :last_booked, :last_visit, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (email) DO UPDATE SET
		visits = guests.visits + 1,
		last_visit = EXCLUDED.last_visit,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpsertProfile(ctx context.Context, model model.Guest) error
	RecordVisitTx(ctx context.Context, tx *sqlx.Tx, model model.Guest) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldEmail, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertProfile creates the guest profile or refreshes its contact details,
// leaving the visit counter untouched.
func (repo *repositoryImpl) UpsertProfile(ctx context.Context, guest model.Guest) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.UpsertProfile")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertProfileQuery)

	_, err := repo.db.Write.NamedExecContext(ctx, upsertProfileQuery, guest)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert guest profile: %w", err)
	}

	return nil
}

// RecordVisitTx increments the guest's visit counter, creating the profile
// with a single visit when it does not exist yet.
func (repo *repositoryImpl) RecordVisitTx(ctx context.Context, tx *sqlx.Tx, guest model.Guest) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.RecordVisitTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, recordVisitQuery)

	_, err := tx.NamedExecContext(ctx, recordVisitQuery, guest)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to record guest visit: %w", err)
	}

	return nil
}
