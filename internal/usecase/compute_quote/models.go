package compute_quote

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

// Request модель запроса на расчет котировки
type Request struct {
	Items     []domain.LineItem
	Vehicle   map[string]interface{}
	RushOrder bool
}

// Response модель ответа с котировкой
type Response struct {
	Quote *domain.Quote
}
