package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ErrInvalidID возвращается, когда идентификатор в пути не положительное целое
var ErrInvalidID = errors.New("handlers: invalid id")

// PathID читает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryLimit читает параметр limit; пустое или некорректное значение заменяется на def,
// слишком большое ограничивается maxLimit
func QueryLimit(r *http.Request, def, maxLimit int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
