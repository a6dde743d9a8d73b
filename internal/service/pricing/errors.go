package pricing

import "errors"

var (
	// ErrNoItems возвращается, когда в запросе нет ни одной позиции
	ErrNoItems = errors.New("pricing: no items provided")

	// ErrInvalidItem возвращается для позиции с отрицательной ценой или трудоемкостью
	ErrInvalidItem = errors.New("pricing: invalid line item")
)
