package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии точки или даты
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
