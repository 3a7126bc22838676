package favorites

import (
	"context"
	"errors"
	"fmt"

	favoriteRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/favorite"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

// Service сервис избранных туров
// Пользователь управляет только своим избранным
type Service struct {
	favoriteRepo FavoriteRepository
	tourRepo     TourRepository
	clock        Clock
	logger       Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(favoriteRepo FavoriteRepository, tourRepo TourRepository, clock Clock, logger Logger) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		tourRepo:     tourRepo,
		clock:        clock,
		logger:       logger,
	}
}

// Add добавляет тур в избранное, повторное добавление не считается ошибкой
func (s *Service) Add(ctx context.Context, requesterID, userID, tourID int64) error {
	if requesterID != userID {
		s.logger.Warn("Add: user=%d tried to modify favorites of user=%d", requesterID, userID)
		return ErrAccessDenied
	}

	if _, err := s.tourRepo.GetByID(ctx, tourID); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			return ErrTourNotFound
		}
		s.logger.Error("Add: failed to get tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: Add - get tour: %v", ErrInternal, err)
	}

	if err := s.favoriteRepo.Add(ctx, userID, tourID); err != nil {
		s.logger.Error("Add: failed to add tour=%d for user=%d: %v", tourID, userID, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: tour=%d added to favorites of user=%d", tourID, userID)
	return nil
}

// Remove удаляет тур из избранного
func (s *Service) Remove(ctx context.Context, requesterID, userID, tourID int64) error {
	if requesterID != userID {
		s.logger.Warn("Remove: user=%d tried to modify favorites of user=%d", requesterID, userID)
		return ErrAccessDenied
	}

	if err := s.favoriteRepo.Remove(ctx, userID, tourID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		}
		s.logger.Error("Remove: failed to remove tour=%d for user=%d: %v", tourID, userID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: tour=%d removed from favorites of user=%d", tourID, userID)
	return nil
}

// List избранное пользователя, сначала недавно добавленные
// Туры, удаленные из каталога, пропускаются
func (s *Service) List(ctx context.Context, requesterID, userID int64) (*FavoriteListResponse, error) {
	if requesterID != userID {
		s.logger.Warn("List: user=%d tried to read favorites of user=%d", requesterID, userID)
		return nil, ErrAccessDenied
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List: failed to list favorites of user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	today := s.clock.Today()
	resp := &FavoriteListResponse{Favorites: make([]FavoriteResponse, 0, len(favorites))}
	for _, f := range favorites {
		tour, err := s.tourRepo.GetByID(ctx, f.TourID)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				s.logger.Warn("List: tour=%d from favorites of user=%d no longer exists", f.TourID, userID)
				continue
			}
			s.logger.Error("List: failed to get tour=%d: %v", f.TourID, err)
			return nil, fmt.Errorf("%w: List - get tour: %v", ErrInternal, err)
		}

		resp.Favorites = append(resp.Favorites, FavoriteResponse{
			Tour:    models.FromDomainTour(tour, today),
			AddedAt: f.AddedAt,
		})
	}

	return resp, nil
}
