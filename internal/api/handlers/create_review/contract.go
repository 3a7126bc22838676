package create_review

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TourService/internal/service/reviews"
)

type ReviewService interface {
	Submit(ctx context.Context, req *reviews.SubmitRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
