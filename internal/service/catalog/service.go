package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

// Service сервис карточек каталога: тур, отель и справочник стран
type Service struct {
	tourRepo            TourRepository
	referenceRepo       ReferenceRepository
	bookingRepo         BookingRepository
	reviewRepo          ReviewRepository
	ratings             RatingService
	recentBookingsLimit int
	logger              Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	tourRepo TourRepository,
	referenceRepo ReferenceRepository,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	ratings RatingService,
	recentBookingsLimit int,
	logger Logger,
) *Service {
	if recentBookingsLimit <= 0 {
		recentBookingsLimit = domain.DefaultRecentBookingsLimit
	}
	return &Service{
		tourRepo:            tourRepo,
		referenceRepo:       referenceRepo,
		bookingRepo:         bookingRepo,
		reviewRepo:          reviewRepo,
		ratings:             ratings,
		recentBookingsLimit: recentBookingsLimit,
		logger:              logger,
	}
}

// GetTour подробная карточка тура: изображения, средний рейтинг,
// последние бронирования и отзывы (сначала новые)
func (s *Service) GetTour(ctx context.Context, tourID int64) (*models.TourDetailResponse, error) {
	s.logger.Info("GetTour: fetching tour id=%d", tourID)

	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("GetTour: tour not found id=%d", tourID)
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetTour: failed to get tour id=%d: %v", tourID, err)
		return nil, fmt.Errorf("%w: GetTour - get tour: %v", ErrInternal, err)
	}

	imageIDs := make([]int64, 0, len(tour.GalleryImageIDs)+1)
	if tour.MainImageID != nil {
		imageIDs = append(imageIDs, *tour.MainImageID)
	}
	imageIDs = append(imageIDs, tour.GalleryImageIDs...)

	images, err := s.referenceRepo.GetImagesByIDs(ctx, imageIDs)
	if err != nil {
		s.logger.Error("GetTour: failed to get images for tour id=%d: %v", tourID, err)
		return nil, fmt.Errorf("%w: GetTour - get images: %v", ErrInternal, err)
	}

	target := domain.TourTarget(tourID)
	avg, hasRating, err := s.ratings.AverageRating(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTour - average rating: %v", ErrInternal, err)
	}

	recent, err := s.bookingRepo.GetRecentByTour(ctx, tourID, s.recentBookingsLimit)
	if err != nil {
		s.logger.Error("GetTour: failed to get recent bookings for tour id=%d: %v", tourID, err)
		return nil, fmt.Errorf("%w: GetTour - recent bookings: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByTarget(ctx, target, domain.MaxListLimit)
	if err != nil {
		s.logger.Error("GetTour: failed to get reviews for tour id=%d: %v", tourID, err)
		return nil, fmt.Errorf("%w: GetTour - reviews: %v", ErrInternal, err)
	}

	resp := &models.TourDetailResponse{
		Tour:           models.FromDomainTour(tour, s.ratings.Today()),
		Images:         models.FromDomainImages(images),
		RecentBookings: models.FromDomainRecentBookings(recent),
		Reviews:        models.FromDomainReviews(reviews),
	}
	if hasRating {
		resp.AverageRating = &avg
	}

	s.logger.Info("GetTour: tour id=%d with %d reviews, %d recent bookings", tourID, len(reviews), len(recent))
	return resp, nil
}

// GetHotel карточка отеля со средним рейтингом
func (s *Service) GetHotel(ctx context.Context, hotelID int64) (*models.HotelDetailResponse, error) {
	s.logger.Info("GetHotel: fetching hotel id=%d", hotelID)

	hotel, err := s.referenceRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHotelNotFound) {
			s.logger.Warn("GetHotel: hotel not found id=%d", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetHotel: failed to get hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotel - get hotel: %v", ErrInternal, err)
	}

	images, err := s.referenceRepo.ListHotelImages(ctx, hotelID)
	if err != nil {
		s.logger.Error("GetHotel: failed to get images for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotel - get images: %v", ErrInternal, err)
	}

	target := domain.HotelTarget(hotelID)
	avg, hasRating, err := s.ratings.AverageRating(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotel - average rating: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByTarget(ctx, target, domain.MaxListLimit)
	if err != nil {
		s.logger.Error("GetHotel: failed to get reviews for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotel - reviews: %v", ErrInternal, err)
	}

	resp := &models.HotelDetailResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Stars:       hotel.Stars,
		Address:     hotel.Address,
		Description: hotel.Description,
		CountryID:   hotel.CountryID,
		CountryName: hotel.CountryName,
		CityID:      hotel.CityID,
		CityName:    hotel.CityName,
		Images:      models.FromDomainImages(images),
		Reviews:     models.FromDomainReviews(reviews),
	}
	if hasRating {
		resp.AverageRating = &avg
	}

	return resp, nil
}

// ListCountries страны по алфавиту, у каждой - города по алфавиту
func (s *Service) ListCountries(ctx context.Context) ([]models.CountryResponse, error) {
	countries, err := s.referenceRepo.ListCountries(ctx)
	if err != nil {
		s.logger.Error("ListCountries: failed to list countries: %v", err)
		return nil, fmt.Errorf("%w: ListCountries - list countries: %v", ErrInternal, err)
	}

	cities, err := s.referenceRepo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCountries: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: ListCountries - list cities: %v", ErrInternal, err)
	}

	return models.FromDomainCountries(GroupCities(countries, cities)), nil
}

// GroupCities раскладывает города по странам, сохраняя порядок обоих списков.
// Города без известной страны отбрасываются.
func GroupCities(countries []domain.Country, cities []domain.City) []domain.Country {
	index := make(map[int64]int, len(countries))
	result := make([]domain.Country, len(countries))
	for i, c := range countries {
		result[i] = domain.Country{ID: c.ID, Name: c.Name, Cities: []domain.City{}}
		index[c.ID] = i
	}

	for _, city := range cities {
		if i, ok := index[city.CountryID]; ok {
			result[i].Cities = append(result[i].Cities, city)
		}
	}

	return result
}
