package domain

import "time"

// LineItem a priced, labor-bearing unit selected by the customer.
// Missing price or laborHours are treated as 0.
type LineItem struct {
	SKU        string
	Name       string
	Category   ProductCategory
	Price      float64
	LaborHours float64
}

// QuoteRequest input of the pricing engine
type QuoteRequest struct {
	Items     []LineItem
	Vehicle   map[string]interface{}
	RushOrder bool
}

// QuoteLine line item with its own labor cost
type QuoteLine struct {
	LineItem
	LaborCost float64
}

// QuoteSummary monetary totals of a quote. Values are not rounded.
type QuoteSummary struct {
	PartsSubtotal float64
	LaborHours    float64
	LaborRate     float64
	LaborCost     float64
	RushFee       float64
	Subtotal      float64 // parts + labor + rush
	TaxRate       float64
	Tax           float64
	Total         float64
	Currency      string
}

// QuoteTimeline completion estimate in days
type QuoteTimeline struct {
	WorkDays      int
	BufferDays    int
	EstimatedDays int
	RushOrder     bool
}

// Quote immutable result of pricing a QuoteRequest
type Quote struct {
	ID         string
	CreatedAt  time.Time
	ValidUntil time.Time
	Vehicle    map[string]interface{}
	LineItems  []QuoteLine
	Summary    QuoteSummary
	Timeline   QuoteTimeline
}
