package catalog

import (
	"context"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// ProductSource источник товаров (Postgres или Turso)
type ProductSource interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Name() string
}

// Cache кэш выборок каталога
type Cache interface {
	Get(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, bool, error)
	Set(ctx context.Context, filter domain.ProductFilter, products []*domain.Product) error
}

// Metrics счетчики обращений к кэшу
type Metrics interface {
	IncCatalogCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
