package compute_quote

import "errors"

var (
	// ErrNoItems возвращается, когда в запросе нет позиций
	ErrNoItems = errors.New("no items provided")

	// ErrInvalidItem возвращается для позиции с отрицательной ценой или трудоемкостью
	ErrInvalidItem = errors.New("invalid line item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
