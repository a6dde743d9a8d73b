package compute_quote

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

// PricingEngine интерфейс движка расчета
type PricingEngine interface {
	ComputeQuote(req domain.QuoteRequest) (*domain.Quote, error)
}

// Metrics бизнес-метрики котировок
type Metrics interface {
	IncQuoteComputed(rush bool, total float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
