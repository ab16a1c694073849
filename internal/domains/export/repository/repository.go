package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tiara/infras/otel"
	"tiara/infras/postgres"
	"tiara/shared/constant"
	"tiara/shared/logger"
)

type Export interface {
	Collection(ctx context.Context, table string) ([]map[string]any, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Export {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Collection reads a whole table as generic records so the exporter does not
// need to know each domain's schema.
func (repo *repositoryImpl) Collection(ctx context.Context, table string) ([]map[string]any, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".export.Collection")
	defer scope.End()

	query := "SELECT * FROM " + table
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Read.QueryxContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read collection (%s): %w", table, err)
	}
	defer rows.Close()

	records := []map[string]any{}

	for rows.Next() {
		record := map[string]any{}
		if err := rows.MapScan(record); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to scan collection row (%s): %w", table, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to iterate collection (%s): %w", table, err)
	}

	return records, nil
}
