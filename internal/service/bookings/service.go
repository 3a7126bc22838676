package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Подтверждение, завершение и отмена меняют статус и места тура в одной транзакции.
type Service struct {
	bookingRepo BookingRepository
	tourRepo    TourRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	tourRepo TourRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, сотрудник - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnerOrStaff(ctx, booking.UserID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	tours, err := s.loadTours(ctx, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, tours[booking.TourID]), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d by user=%d, status=%v", req.UserID, req.RequesterID, req.Status)

	if err := s.checkOwnerOrStaff(ctx, req.UserID, req.RequesterID); err != nil {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", req.RequesterID, req.UserID)
		return nil, err
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	tours, err := s.loadTours(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, tours), nil
}

// GetTourBookings получает бронирования тура с фильтрацией по периоду и статусу
// Доступно только сотрудникам
func (s *Service) GetTourBookings(ctx context.Context, req *models.GetTourBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTourBookings: fetching bookings for tour=%d, user=%d, status=%v, includeInactive=%t",
		req.TourID, req.UserID, req.Status, req.IncludeInactive)

	if err := s.checkStaff(ctx, req.UserID); err != nil {
		s.logger.Warn("GetTourBookings: access denied for user=%d", req.UserID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTourBookings: invalid filter for tour=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	tour, err := s.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetTourBookings: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: GetTourBookings - tour repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByTourWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTourBookings: repository error for tour=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: GetTourBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTourBookings: successfully fetched %d bookings for tour=%d", len(bookings), req.TourID)
	return models.FromDomainBookingList(bookings, map[int64]*domain.Tour{tour.ID: tour}), nil
}

// UpdateStatus меняет статус бронирования по запросу сотрудника
// confirmed - подтверждение со списанием мест, completed - завершение, cancelled - отмена
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	if err := s.checkStaff(ctx, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.UserID)
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	switch newStatus {
	case domain.StatusConfirmed:
		return s.Confirm(ctx, bookingID)
	case domain.StatusCompleted:
		return s.Complete(ctx, bookingID)
	case domain.StatusCancelled:
		return s.cancel(ctx, bookingID)
	default:
		return fmt.Errorf("%w: cannot set status %s", domain.ErrInvalidTransition, newStatus)
	}
}

// Confirm подтверждает бронирование и списывает места тура.
// Строка бронирования блокируется до конца транзакции, а места списываются
// одним условным UPDATE: при нехватке мест подтверждение сразу завершается ошибкой.
func (s *Service) Confirm(ctx context.Context, bookingID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Confirm", bookingID)
		if err != nil {
			return err
		}

		if err := s.transition(booking, domain.StatusConfirmed, "Confirm"); err != nil {
			return err
		}

		if err := s.tourRepo.DecrementSlots(txCtx, booking.TourID, booking.Headcount); err != nil {
			switch {
			case errors.Is(err, tourRepo.ErrNotEnoughSlots):
				s.logger.Warn("Confirm: not enough slots in tour id=%d for booking id=%d (headcount=%d)",
					booking.TourID, bookingID, booking.Headcount)
				return fmt.Errorf("%w: tour %d, headcount %d", domain.ErrInsufficientSlots, booking.TourID, booking.Headcount)
			case errors.Is(err, tourRepo.ErrTourNotFound):
				return ErrTourNotFound
			}
			s.logger.Error("Confirm: failed to decrement slots of tour id=%d: %v", booking.TourID, err)
			return fmt.Errorf("%w: Confirm - decrement slots: %v", ErrInternal, err)
		}

		if err := s.setStatus(txCtx, "Confirm", bookingID, booking.Status); err != nil {
			return err
		}

		s.logger.Info("Confirm: booking id=%d confirmed, %d slots taken from tour id=%d",
			bookingID, booking.Headcount, booking.TourID)
		return nil
	})
}

// Complete переводит подтвержденное бронирование в завершенное
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Complete", bookingID)
		if err != nil {
			return err
		}

		if err := s.transition(booking, domain.StatusCompleted, "Complete"); err != nil {
			return err
		}

		if err := s.setStatus(txCtx, "Complete", bookingID, booking.Status); err != nil {
			return err
		}

		s.logger.Info("Complete: booking id=%d completed", bookingID)
		return nil
	})
}

// Cancel отменяет бронирование по запросу владельца или сотрудника.
// Места возвращаются в тур, только если бронирование было подтверждено.
// Отмена уже отмененного или завершенного бронирования ничего не меняет.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkOwnerOrStaff(ctx, booking.UserID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	return s.cancel(ctx, bookingID)
}

func (s *Service) cancel(ctx context.Context, bookingID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if booking.Status.IsTerminal() {
			s.logger.Info("Cancel: booking id=%d already %s, nothing to do", bookingID, booking.Status)
			return nil
		}

		heldSlots := booking.Status.HoldsSlots()
		if err := s.transition(booking, domain.StatusCancelled, "Cancel"); err != nil {
			return err
		}

		if heldSlots {
			if err := s.tourRepo.IncrementSlots(txCtx, booking.TourID, booking.Headcount); err != nil {
				if errors.Is(err, tourRepo.ErrTourNotFound) {
					return ErrTourNotFound
				}
				s.logger.Error("Cancel: failed to restore slots of tour id=%d: %v", booking.TourID, err)
				return fmt.Errorf("%w: Cancel - increment slots: %v", ErrInternal, err)
			}
			s.logger.Info("Cancel: %d slots returned to tour id=%d", booking.Headcount, booking.TourID)
		}

		if err := s.setStatus(txCtx, "Cancel", bookingID, booking.Status); err != nil {
			return err
		}

		s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
		return nil
	})
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// transition меняет статус по правилам конечного автомата бронирования
func (s *Service) transition(booking *domain.Booking, next domain.BookingStatus, op string) error {
	if err := booking.TransitionTo(next, s.now()); err != nil {
		s.logger.Warn("%s: booking id=%d has status=%s", op, booking.ID, booking.Status)
		return err
	}
	return nil
}

func (s *Service) setStatus(ctx context.Context, op string, id int64, status domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: failed to update status of booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}
	return nil
}

// loadTours загружает туры бронирований для расчета стоимости
func (s *Service) loadTours(ctx context.Context, bookings []*domain.Booking) (map[int64]*domain.Tour, error) {
	tours := make(map[int64]*domain.Tour)
	for _, b := range bookings {
		if _, ok := tours[b.TourID]; ok {
			continue
		}
		tour, err := s.tourRepo.GetByID(ctx, b.TourID)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				continue
			}
			s.logger.Error("loadTours: failed to get tour id=%d: %v", b.TourID, err)
			return nil, fmt.Errorf("%w: loadTours - tour repository error: %v", ErrInternal, err)
		}
		tours[b.TourID] = tour
	}
	return tours, nil
}

// checkOwnerOrStaff доступ есть у владельца ресурса и у сотрудников
func (s *Service) checkOwnerOrStaff(ctx context.Context, ownerID, userID int64) error {
	if ownerID == userID {
		return nil
	}
	return s.checkStaff(ctx, userID)
}

// checkStaff проверяет, что пользователь является сотрудником агентства
func (s *Service) checkStaff(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkStaff: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaff: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaff - failed to get user: %v", ErrInternal, err)
	}

	if !user.Role.IsStaff() {
		s.logger.Warn("checkStaff: user=%d with role=%s is not staff", userID, user.Role)
		return ErrAccessDenied
	}

	return nil
}
