package catalog

import "errors"

var (
	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("catalog.cache: redis error")

	// ErrEncode возвращается при ошибке (де)сериализации списка товаров
	ErrEncode = errors.New("catalog.cache: encode error")
)
