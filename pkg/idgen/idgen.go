// Package idgen генерирует идентификаторы котировок/бронирований и коды подтверждения.
package idgen

import (
	"crypto/rand"
	"io"

	"github.com/google/uuid"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator генератор идентификаторов
type Generator struct {
	random io.Reader
}

// New создает генератор на crypto/rand
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader создает генератор с заданным источником случайности (для тестов)
func NewWithReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

// NewID возвращает prefix + UUIDv7. UUIDv7 упорядочен по времени создания,
// поэтому идентификаторы остаются "time-based", но не совпадают в пределах одной миллисекунды.
func (g *Generator) NewID(prefix string) string {
	id, err := uuid.NewV7FromReader(g.random)
	if err != nil {
		id = uuid.New()
	}
	return prefix + id.String()
}

// NewCode возвращает prefix + length символов [0-9A-Z].
// Уникальность не гарантируется, код предназначен для передачи человеку.
func (g *Generator) NewCode(prefix string, length int) string {
	buf := make([]byte, length)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		// crypto/rand не возвращает ошибок на поддерживаемых платформах
		_, _ = io.ReadFull(rand.Reader, buf)
	}

	code := make([]byte, length)
	for i, b := range buf {
		code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return prefix + string(code)
}
