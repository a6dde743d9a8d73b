package compute_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/pricing"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/idgen"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
)

type recordingMetrics struct {
	rush   []bool
	totals []float64
}

func (m *recordingMetrics) IncQuoteComputed(rush bool, total float64) {
	m.rush = append(m.rush, rush)
	m.totals = append(m.totals, total)
}

type brokenEngine struct{}

func (brokenEngine) ComputeQuote(domain.QuoteRequest) (*domain.Quote, error) {
	return nil, errors.New("unexpected")
}

func newTestUseCase(m *recordingMetrics) *UseCase {
	return NewUseCase(pricing.NewEngine(pricing.DefaultConfig(), idgen.New()), m, logger.NewNop())
}

func TestExecute_Computes(t *testing.T) {
	m := &recordingMetrics{}
	uc := newTestUseCase(m)

	resp, err := uc.Execute(context.Background(), &Request{
		Items:     []domain.LineItem{{SKU: "WRP-1", Price: 4500, LaborHours: 24}},
		RushOrder: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 19350.0, resp.Quote.Summary.Total)
	assert.Regexp(t, `^QT-[0-9a-f-]{36}$`, resp.Quote.ID)
	assert.Equal(t, []bool{true}, m.rush)
	assert.Equal(t, []float64{19350}, m.totals)
}

func TestExecute_NoItems(t *testing.T) {
	m := &recordingMetrics{}
	uc := newTestUseCase(m)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Empty(t, m.totals)
}

func TestExecute_InvalidItem(t *testing.T) {
	uc := newTestUseCase(&recordingMetrics{})

	_, err := uc.Execute(context.Background(), &Request{Items: []domain.LineItem{{Price: -10}}})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestExecute_EngineFailure(t *testing.T) {
	uc := NewUseCase(brokenEngine{}, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Items: []domain.LineItem{{}}})
	assert.ErrorIs(t, err, ErrInternal)
}
