package reviews

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reviews.service: invalid input")

	// ErrTargetNotFound возвращается, когда тур или отель отзыва не найден
	ErrTargetNotFound = errors.New("reviews.service: review target not found")

	// ErrUserNotFound возвращается, когда автор отзыва не найден
	ErrUserNotFound = errors.New("reviews.service: user not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("reviews.service: internal error")
)
