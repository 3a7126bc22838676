package favorites

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("favorites.service: tour not found")

	// ErrFavoriteNotFound возвращается, когда тура нет в избранном
	ErrFavoriteNotFound = errors.New("favorites.service: favorite not found")

	// ErrAccessDenied возвращается при попытке изменить чужое избранное
	ErrAccessDenied = errors.New("favorites.service: access denied")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("favorites.service: internal error")
)
