package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrTourNotFound тур бронирования удален или не существует
	ErrTourNotFound = errors.New("bookings.service: tour not found")

	// ErrAccessDenied бронирование чужое, а пользователь не сотрудник
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInvalidInput некорректный статус или фильтр
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	ErrInternal = errors.New("bookings.service: internal error")
)
