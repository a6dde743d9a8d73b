package pricing

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

// Config бизнес-константы расчета. Передается в Engine явно, чтобы тесты могли менять ставки.
type Config struct {
	LaborRate          float64 // стоимость часа работы
	TaxRate            float64 // НДС, применяется к subtotal вместе со срочной надбавкой
	RushRate           float64 // надбавка за срочность от parts + labor
	HoursPerWorkDay    float64
	RushBufferDays     int
	StandardBufferDays int
	ValidityDays       int
	Currency           string
}

// DefaultConfig ставки по умолчанию
func DefaultConfig() Config {
	return Config{
		LaborRate:          domain.DefaultLaborRate,
		TaxRate:            domain.DefaultTaxRate,
		RushRate:           domain.DefaultRushRate,
		HoursPerWorkDay:    domain.DefaultHoursPerWorkDay,
		RushBufferDays:     domain.DefaultRushBufferDays,
		StandardBufferDays: domain.DefaultStandardBufferDays,
		ValidityDays:       domain.DefaultQuoteValidityDays,
		Currency:           domain.DefaultCurrency,
	}
}
