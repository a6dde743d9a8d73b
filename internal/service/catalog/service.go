package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Service сервис чтения каталога товаров
type Service struct {
	source  ProductSource
	cache   Cache
	pricing Pricing
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога. cache и metrics могут быть nil.
func NewService(source ProductSource, cache Cache, pricing Pricing, metrics Metrics, logger Logger) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		pricing: pricing,
		metrics: metrics,
		logger:  logger,
	}
}

// List возвращает товары, сгруппированные по категориям.
// Ошибки кэша не прерывают запрос: читаем напрямую из источника.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) (*Listing, error) {
	filter = filter.Normalize()

	products, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		Products:   make(map[domain.ProductCategory][]*domain.Product),
		Categories: make([]domain.ProductCategory, 0),
		LaborRate:  s.pricing.LaborRate,
		Currency:   s.pricing.Currency,
		Source:     s.source.Name(),
	}

	for _, p := range products {
		if _, ok := listing.Products[p.Category]; !ok {
			listing.Categories = append(listing.Categories, p.Category)
		}
		listing.Products[p.Category] = append(listing.Products[p.Category], p)
	}

	sort.Slice(listing.Categories, func(i, j int) bool {
		return listing.Categories[i] < listing.Categories[j]
	})

	s.logger.Info("Catalog: listed %d products in %d categories (source=%s)",
		len(products), len(listing.Categories), listing.Source)

	return listing, nil
}

func (s *Service) load(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, filter)
		switch {
		case err != nil:
			s.incCache("error")
			s.logger.Warn("Catalog: cache get failed, falling back to source: %v", err)
		case found:
			s.incCache("hit")
			return cached, nil
		default:
			s.incCache("miss")
		}
	}

	products, err := s.source.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error("Catalog: source %s failed: %v", s.source.Name(), err)
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, filter, products); err != nil {
			s.logger.Warn("Catalog: cache set failed: %v", err)
		}
	}

	return products, nil
}

func (s *Service) incCache(result string) {
	if s.metrics != nil {
		s.metrics.IncCatalogCache(result)
	}
}
