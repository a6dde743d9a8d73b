package availability

import "errors"

var (
	// ErrInvalidInput возвращается при пустой точке или нулевой дате
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrOracle возвращается, когда источник занятых слотов недоступен
	ErrOracle = errors.New("availability: oracle failure")
)
