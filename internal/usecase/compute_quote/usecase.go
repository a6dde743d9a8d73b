package compute_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/pricing"
)

// UseCase use case для расчета котировки
type UseCase struct {
	engine  PricingEngine
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(engine PricingEngine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		engine:  engine,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute рассчитывает котировку. Котировка нигде не сохраняется.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeQuote: items=%d, rush=%t", len(req.Items), req.RushOrder)

	quote, err := uc.engine.ComputeQuote(domain.QuoteRequest{
		Items:     req.Items,
		Vehicle:   req.Vehicle,
		RushOrder: req.RushOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrNoItems):
			uc.logger.Warn("ComputeQuote: no items provided")
			return nil, ErrNoItems
		case errors.Is(err, pricing.ErrInvalidItem):
			uc.logger.Warn("ComputeQuote: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
		default:
			uc.logger.Error("ComputeQuote: failed to compute quote: %v", err)
			return nil, fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncQuoteComputed(req.RushOrder, quote.Summary.Total)
	}

	uc.logger.Info("ComputeQuote: quote %s total=%.2f %s, estimated_days=%d",
		quote.ID, quote.Summary.Total, quote.Summary.Currency, quote.Timeline.EstimatedDays)

	return &Response{Quote: quote}, nil
}
