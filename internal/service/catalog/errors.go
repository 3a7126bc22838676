package catalog

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("catalog.service: tour not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("catalog.service: hotel not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("catalog.service: internal error")
)
