package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) NewID(prefix string) string {
	s.n++
	return prefix + string(rune('0'+s.n))
}

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestEngine(cfg Config) *Engine {
	e := NewEngine(cfg, &sequenceIDs{})
	e.timeProvider = &fixedTime{now: testNow}
	return e
}

func wrapItem() domain.LineItem {
	return domain.LineItem{
		SKU:        "WRP-SATIN-BLK",
		Name:       "Satin Black Wrap",
		Category:   domain.CategoryWraps,
		Price:      4500,
		LaborHours: 24,
	}
}

func TestComputeQuote_Standard(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	quote, err := engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{wrapItem()}})
	require.NoError(t, err)

	assert.Equal(t, "QT-1", quote.ID)
	assert.Equal(t, testNow, quote.CreatedAt)
	assert.Equal(t, testNow.AddDate(0, 0, 30), quote.ValidUntil)
	assert.Equal(t, map[string]interface{}{}, quote.Vehicle)

	s := quote.Summary
	assert.Equal(t, 4500.0, s.PartsSubtotal)
	assert.Equal(t, 24.0, s.LaborHours)
	assert.Equal(t, 350.0, s.LaborRate)
	assert.Equal(t, 8400.0, s.LaborCost)
	assert.Equal(t, 0.0, s.RushFee)
	assert.Equal(t, 12900.0, s.Subtotal)
	assert.Equal(t, 0.20, s.TaxRate)
	assert.Equal(t, 2580.0, s.Tax)
	assert.Equal(t, 15480.0, s.Total)
	assert.Equal(t, "MAD", s.Currency)

	assert.Equal(t, domain.QuoteTimeline{WorkDays: 3, BufferDays: 5, EstimatedDays: 8}, quote.Timeline)

	require.Len(t, quote.LineItems, 1)
	assert.Equal(t, 8400.0, quote.LineItems[0].LaborCost)
	assert.Equal(t, "WRP-SATIN-BLK", quote.LineItems[0].SKU)
}

func TestComputeQuote_Rush(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	quote, err := engine.ComputeQuote(domain.QuoteRequest{
		Items:     []domain.LineItem{wrapItem()},
		RushOrder: true,
	})
	require.NoError(t, err)

	s := quote.Summary
	assert.Equal(t, 3225.0, s.RushFee)
	assert.Equal(t, 16125.0, s.Subtotal)
	assert.Equal(t, 3225.0, s.Tax)
	assert.Equal(t, 19350.0, s.Total)
	assert.Equal(t, domain.QuoteTimeline{WorkDays: 3, BufferDays: 2, EstimatedDays: 5, RushOrder: true}, quote.Timeline)
}

func TestComputeQuote_NoItems(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	_, err := engine.ComputeQuote(domain.QuoteRequest{})
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{}})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestComputeQuote_NegativeValuesRejected(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	_, err := engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{{SKU: "X", Price: -1}}})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{{SKU: "X", LaborHours: -2}}})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestComputeQuote_PartiallySpecifiedItem(t *testing.T) {
	engine := newTestEngine(DefaultConfig())

	quote, err := engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{{SKU: "ACC-BADGE"}}})
	require.NoError(t, err)

	assert.Equal(t, 0.0, quote.Summary.Total)
	assert.Equal(t, 0, quote.Timeline.WorkDays)
	assert.Equal(t, 5, quote.Timeline.EstimatedDays)
}

func TestComputeQuote_InjectedRates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LaborRate = 100
	cfg.TaxRate = 0
	engine := newTestEngine(cfg)

	quote, err := engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{{Price: 50, LaborHours: 2}}})
	require.NoError(t, err)

	assert.Equal(t, 200.0, quote.Summary.LaborCost)
	assert.Equal(t, 250.0, quote.Summary.Total)
}

func TestComputeQuote_Idempotent(t *testing.T) {
	engine := newTestEngine(DefaultConfig())
	req := domain.QuoteRequest{
		Items:     []domain.LineItem{wrapItem(), {SKU: "WHL-19", Price: 12000.5, LaborHours: 3.5}},
		RushOrder: true,
	}

	first, err := engine.ComputeQuote(req)
	require.NoError(t, err)
	second, err := engine.ComputeQuote(req)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Timeline, second.Timeline)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestComputeQuote_PartsSubtotalIsAdditive(t *testing.T) {
	engine := newTestEngine(DefaultConfig())
	a := []domain.LineItem{{Price: 1200}, {Price: 300}}
	b := []domain.LineItem{{Price: 4500, LaborHours: 4}}

	qa, err := engine.ComputeQuote(domain.QuoteRequest{Items: a})
	require.NoError(t, err)
	qb, err := engine.ComputeQuote(domain.QuoteRequest{Items: b})
	require.NoError(t, err)
	qab, err := engine.ComputeQuote(domain.QuoteRequest{Items: append(append([]domain.LineItem{}, a...), b...)})
	require.NoError(t, err)

	assert.Equal(t, qa.Summary.PartsSubtotal+qb.Summary.PartsSubtotal, qab.Summary.PartsSubtotal)
}

func TestComputeQuote_RushAndTaxLaws(t *testing.T) {
	engine := newTestEngine(DefaultConfig())
	itemSets := [][]domain.LineItem{
		{{Price: 1200.5, LaborHours: 0.75}},
		{{Price: 300.25}, {Price: 99.99, LaborHours: 1.3}},
		{{LaborHours: 17}},
	}

	for _, items := range itemSets {
		normal, err := engine.ComputeQuote(domain.QuoteRequest{Items: items})
		require.NoError(t, err)
		rush, err := engine.ComputeQuote(domain.QuoteRequest{Items: items, RushOrder: true})
		require.NoError(t, err)

		s := rush.Summary
		assert.Equal(t, 0.25*(s.PartsSubtotal+s.LaborCost), s.RushFee)
		assert.Equal(t, 0.20*(s.PartsSubtotal+s.LaborCost+s.RushFee), s.Tax)
		assert.Equal(t, 0.20*(normal.Summary.PartsSubtotal+normal.Summary.LaborCost), normal.Summary.Tax)
		assert.Greater(t, rush.Summary.Total, normal.Summary.Total)
		assert.Equal(t, rush.Timeline.WorkDays+2, rush.Timeline.EstimatedDays)
		assert.Equal(t, normal.Timeline.WorkDays+5, normal.Timeline.EstimatedDays)
	}
}

func TestComputeQuote_WorkDaysMonotonic(t *testing.T) {
	engine := newTestEngine(DefaultConfig())
	prev := -1

	for hours := 0.0; hours <= 40; hours += 0.5 {
		quote, err := engine.ComputeQuote(domain.QuoteRequest{Items: []domain.LineItem{{LaborHours: hours}}})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.Timeline.WorkDays, prev)
		prev = quote.Timeline.WorkDays
	}

	assert.Equal(t, 5, prev)
}
