package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_review"
	favoritesHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/favorites"
	getActivePromotionsHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_active_promotions"
	getBookingHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_booking"
	getCountriesHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_countries"
	getFeaturedToursHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_featured_tours"
	getHotelHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_hotel"
	getTourHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_tour"
	getTourBookingsHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_tour_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_user_bookings"
	searchToursHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/search_tours"
	updateBookingStatusHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	favoriteRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/favorite"
	promotionRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/promotion"
	reviewRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/review"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-TourService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-TourService/internal/service/catalog"
	favoritesService "github.com/m04kA/SMC-TourService/internal/service/favorites"
	rankingService "github.com/m04kA/SMC-TourService/internal/service/ranking"
	reviewsService "github.com/m04kA/SMC-TourService/internal/service/reviews"
	createBookingUC "github.com/m04kA/SMC-TourService/internal/usecase/create_booking"
	searchToursUC "github.com/m04kA/SMC-TourService/internal/usecase/search_tours"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/metrics"
	"github.com/m04kA/SMC-TourService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TourService...")

	location, err := cfg.Catalog.Location()
	if err != nil {
		log.Fatal("Invalid catalog timezone: %v", err)
	}
	log.Info("Catalog timezone: %s", location)

	// Инициализируем метрики (если включены)
	// При выключенных метриках обёртка БД работает с nil коллектором и ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	tourRepository := tourRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	promotionRepository := promotionRepo.NewRepository(wrappedDB)
	favoriteRepository := favoriteRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	rankingSvc := rankingService.NewService(
		tourRepository,
		bookingRepository,
		reviewRepository,
		promotionRepository,
		location,
		log,
	)
	catalogSvc := catalogService.NewService(
		tourRepository,
		catalogRepository,
		bookingRepository,
		reviewRepository,
		rankingSvc,
		cfg.Catalog.RecentBookingsLimit,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		tourRepository,
		userRepository,
		txMgr,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		tourRepository,
		catalogRepository,
		userRepository,
		log,
	)
	favoriteSvc := favoritesService.NewService(favoriteRepository, tourRepository, rankingSvc, log)

	// Инициализируем use cases
	searchToursUseCase := searchToursUC.NewUseCase(tourRepository, location, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tourRepository,
		userRepository,
		location,
		log,
	)

	// Инициализируем handlers
	searchTours := searchToursHandler.NewHandler(searchToursUseCase, log)
	getFeaturedTours := getFeaturedToursHandler.NewHandler(rankingSvc, cfg.Catalog.FeaturedLimit, log)
	getActivePromotions := getActivePromotionsHandler.NewHandler(rankingSvc, cfg.Catalog.PromotionsLimit, log)
	getTour := getTourHandler.NewHandler(catalogSvc, log)
	getHotel := getHotelHandler.NewHandler(catalogSvc, log)
	getCountries := getCountriesHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTourBookings := getTourBookingsHandler.NewHandler(bookingSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	favorites := favoritesHandler.NewHandler(favoriteSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск и витрина
	api.HandleFunc("/tours/search", searchTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/featured", getFeaturedTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions/active", getActivePromotions.Handle).Methods(http.MethodGet)

	// Карточки и справочники
	api.HandleFunc("/tours/{tourId:[0-9]+}", getTour.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId:[0-9]+}", getHotel.Handle).Methods(http.MethodGet)
	api.HandleFunc("/countries", getCountries.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tours/{tourId}/bookings", getTourBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы и избранное ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/favorites", favorites.List).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/favorites/{tourId}", favorites.Add).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/favorites/{tourId}", favorites.Remove).Methods(http.MethodDelete)

	// --- Для сотрудников агентства ---
	staff := protected.PathPrefix("/admin").Subrouter()
	staff.Use(middleware.RequireStaff(userRepository, log))
	staff.HandleFunc("/tours", searchTours.HandleAll).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
