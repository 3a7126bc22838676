package search_tours

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_tours: internal error")

	// ErrInvalidPrice граница цены не является десятичным числом
	ErrInvalidPrice = errors.New("search_tours: price is not a decimal number")

	// ErrNegativePrice граница цены меньше нуля
	ErrNegativePrice = errors.New("search_tours: price is negative")
)

// ValidationError некорректное значение параметра поиска.
// Параметр игнорируется, а ошибка возвращается клиенту как предупреждение.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("search_tours: %s=%q ignored: %s", e.Field, e.Value, e.Reason)
}
