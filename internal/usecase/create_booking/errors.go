package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда не хватает обязательных полей или формат даты/времени неверный
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidLocation возвращается, когда точки нет в справочнике
	ErrInvalidLocation = errors.New("invalid location")

	// ErrSlotUnavailable возвращается, когда слот занят или не входит в расписание
	ErrSlotUnavailable = errors.New("time slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// Причины отказа для метрик
const (
	reasonInvalidInput    = "invalid_input"
	reasonInvalidLocation = "invalid_location"
	reasonSlotUnavailable = "slot_unavailable"
	reasonInternal        = "internal"
)
