package product

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/psqlbuilder"
)

// SourceName имя источника в ответе каталога
const SourceName = "postgres"

var productColumns = []string{
	"id",
	"sku",
	"name",
	"category",
	"price",
	"currency",
	"labor_hours",
	"image",
	"color",
	"finish",
	"warranty",
	"type",
	"size",
	"set_count",
	"stars",
	"fiber",
	"shooting",
	"constellations",
	"includes",
	"materials",
	"colors",
}

// Repository каталог товаров в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Name имя источника
func (r *Repository) Name() string {
	return SourceName
}

// ListProducts возвращает товары, отсортированные по категории и имени
func (r *Repository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var row productRow
		if err := rows.Scan(row.fields()...); err != nil {
			return nil, fmt.Errorf("%w: ListProducts - scan product: %v", ErrScanRow, err)
		}
		products = append(products, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProducts - iterate rows: %v", ErrExecQuery, err)
	}

	return products, nil
}

func buildListQuery(filter domain.ProductFilter) (string, []interface{}, error) {
	filter = filter.Normalize()

	builder := psqlbuilder.Select(productColumns...).From("products")

	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"sku": pattern},
		})
	}

	query, args, err := builder.OrderBy("category", "name").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: ListProducts - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
