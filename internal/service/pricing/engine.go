package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Engine рассчитывает котировку по выбранным позициям.
// Не имеет состояния кроме конфигурации, безопасен для конкурентного использования.
type Engine struct {
	cfg          Config
	ids          IDGenerator
	timeProvider TimeProvider
}

// NewEngine создает движок расчета
func NewEngine(cfg Config, ids IDGenerator) *Engine {
	return &Engine{
		cfg:          cfg,
		ids:          ids,
		timeProvider: &RealTimeProvider{},
	}
}

// LaborRate ставка часа работы (отдается каталогом вместе с товарами)
func (e *Engine) LaborRate() float64 {
	return e.cfg.LaborRate
}

// Currency валюта котировок
func (e *Engine) Currency() string {
	return e.cfg.Currency
}

// ComputeQuote рассчитывает котировку.
// Суммы не округляются, округляется вверх только количество рабочих дней.
func (e *Engine) ComputeQuote(req domain.QuoteRequest) (*domain.Quote, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	lines := make([]domain.QuoteLine, 0, len(req.Items))
	var partsSubtotal, totalLaborHours float64

	for i, item := range req.Items {
		if item.Price < 0 || item.LaborHours < 0 {
			return nil, fmt.Errorf("%w: item %d (%s) has negative price or labor hours", ErrInvalidItem, i, item.SKU)
		}

		partsSubtotal += item.Price
		totalLaborHours += item.LaborHours

		lines = append(lines, domain.QuoteLine{
			LineItem:  item,
			LaborCost: item.LaborHours * e.cfg.LaborRate,
		})
	}

	laborCost := totalLaborHours * e.cfg.LaborRate

	// Надбавка считается только от деталей и работы, без налога и без самой себя
	var rushFee float64
	if req.RushOrder {
		rushFee = (partsSubtotal + laborCost) * e.cfg.RushRate
	}

	subtotal := partsSubtotal + laborCost + rushFee
	tax := subtotal * e.cfg.TaxRate

	workDays := e.workDays(totalLaborHours)
	bufferDays := e.cfg.StandardBufferDays
	if req.RushOrder {
		bufferDays = e.cfg.RushBufferDays
	}

	vehicle := req.Vehicle
	if vehicle == nil {
		vehicle = map[string]interface{}{}
	}

	now := e.timeProvider.Now()

	return &domain.Quote{
		ID:         e.ids.NewID(domain.QuoteIDPrefix),
		CreatedAt:  now,
		ValidUntil: now.Add(time.Duration(e.cfg.ValidityDays) * 24 * time.Hour),
		Vehicle:    vehicle,
		LineItems:  lines,
		Summary: domain.QuoteSummary{
			PartsSubtotal: partsSubtotal,
			LaborHours:    totalLaborHours,
			LaborRate:     e.cfg.LaborRate,
			LaborCost:     laborCost,
			RushFee:       rushFee,
			Subtotal:      subtotal,
			TaxRate:       e.cfg.TaxRate,
			Tax:           tax,
			Total:         subtotal + tax,
			Currency:      e.cfg.Currency,
		},
		Timeline: domain.QuoteTimeline{
			WorkDays:      workDays,
			BufferDays:    bufferDays,
			EstimatedDays: workDays + bufferDays,
			RushOrder:     req.RushOrder,
		},
	}, nil
}

func (e *Engine) workDays(laborHours float64) int {
	if e.cfg.HoursPerWorkDay <= 0 {
		return 0
	}
	return int(math.Ceil(laborHours / e.cfg.HoursPerWorkDay))
}
