package tour

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tour.repository: tour not found")

	// ErrNotEnoughSlots возвращается, когда свободных мест меньше, чем запрошено
	ErrNotEnoughSlots = errors.New("tour.repository: not enough available slots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tour.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tour.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tour.repository: failed to scan row")
)
