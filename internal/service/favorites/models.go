package favorites

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

// FavoriteResponse тур из избранного
type FavoriteResponse struct {
	Tour    models.TourResponse `json:"tour"`
	AddedAt time.Time           `json:"addedAt"`
}

// FavoriteListResponse избранное пользователя
type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}
