package catalog

import "errors"

var (
	// ErrSourceUnavailable возвращается, когда источник товаров не ответил
	ErrSourceUnavailable = errors.New("catalog: product source unavailable")
)
