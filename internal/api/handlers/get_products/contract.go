package get_products

import (
	"context"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/catalog"
)

type CatalogService interface {
	List(ctx context.Context, filter domain.ProductFilter) (*catalog.Listing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
