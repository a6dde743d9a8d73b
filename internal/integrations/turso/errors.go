package turso

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы URL базы или токен
	ErrNotConfigured = errors.New("turso client: credentials not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("turso client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Turso
	ErrInvalidResponse = errors.New("turso client: invalid response")

	// ErrStatement возвращается, когда Turso отклонил SQL выражение
	ErrStatement = errors.New("turso client: statement failed")
)
