package compute_quote

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	computeQuote "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/compute_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Items     []QuoteItem            `json:"items"`
	Vehicle   map[string]interface{} `json:"vehicle,omitempty"`
	RushOrder bool                   `json:"rushOrder"`
}

// QuoteItem позиция запроса. Отсутствующие price и laborHours считаются нулем.
type QuoteItem struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	LaborHours float64 `json:"laborHours"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ID         string                 `json:"id"`
	CreatedAt  string                 `json:"createdAt"`
	ValidUntil string                 `json:"validUntil"`
	Vehicle    map[string]interface{} `json:"vehicle"`
	LineItems  []LineItemResponse     `json:"lineItems"`
	Summary    SummaryResponse        `json:"summary"`
	Timeline   TimelineResponse       `json:"timeline"`
}

type LineItemResponse struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	LaborHours float64 `json:"laborHours"`
	LaborCost  float64 `json:"laborCost"`
}

type SummaryResponse struct {
	PartsSubtotal float64 `json:"partsSubtotal"`
	LaborHours    float64 `json:"laborHours"`
	LaborRate     float64 `json:"laborRate"`
	LaborCost     float64 `json:"laborCost"`
	RushFee       float64 `json:"rushFee"`
	Subtotal      float64 `json:"subtotal"`
	TaxRate       float64 `json:"taxRate"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

type TimelineResponse struct {
	WorkDays      int  `json:"workDays"`
	BufferDays    int  `json:"bufferDays"`
	EstimatedDays int  `json:"estimatedDays"`
	RushOrder     bool `json:"rushOrder"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *computeQuote.Request {
	var items []domain.LineItem
	if r.Items != nil {
		items = make([]domain.LineItem, 0, len(r.Items))
	}
	for _, it := range r.Items {
		items = append(items, domain.LineItem{
			SKU:        it.SKU,
			Name:       it.Name,
			Category:   domain.ProductCategory(it.Category),
			Price:      it.Price,
			LaborHours: it.LaborHours,
		})
	}

	return &computeQuote.Request{
		Items:     items,
		Vehicle:   r.Vehicle,
		RushOrder: r.RushOrder,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeQuote.Response) *QuoteResponse {
	q := resp.Quote

	lines := make([]LineItemResponse, 0, len(q.LineItems))
	for _, l := range q.LineItems {
		lines = append(lines, LineItemResponse{
			SKU:        l.SKU,
			Name:       l.Name,
			Category:   string(l.Category),
			Price:      l.Price,
			LaborHours: l.LaborHours,
			LaborCost:  l.LaborCost,
		})
	}

	return &QuoteResponse{
		ID:         q.ID,
		CreatedAt:  handlers.FormatTimestamp(q.CreatedAt),
		ValidUntil: handlers.FormatTimestamp(q.ValidUntil),
		Vehicle:    q.Vehicle,
		LineItems:  lines,
		Summary: SummaryResponse{
			PartsSubtotal: q.Summary.PartsSubtotal,
			LaborHours:    q.Summary.LaborHours,
			LaborRate:     q.Summary.LaborRate,
			LaborCost:     q.Summary.LaborCost,
			RushFee:       q.Summary.RushFee,
			Subtotal:      q.Summary.Subtotal,
			TaxRate:       q.Summary.TaxRate,
			Tax:           q.Summary.Tax,
			Total:         q.Summary.Total,
			Currency:      q.Summary.Currency,
		},
		Timeline: TimelineResponse{
			WorkDays:      q.Timeline.WorkDays,
			BufferDays:    q.Timeline.BufferDays,
			EstimatedDays: q.Timeline.EstimatedDays,
			RushOrder:     q.Timeline.RushOrder,
		},
	}
}
