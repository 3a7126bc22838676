package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TourService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	favoriteRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/favorite"
	promotionRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/promotion"
	reviewRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/review"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-TourService/internal/service/bookings"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
	"github.com/m04kA/SMC-TourService/pkg/txmanager"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

var (
	toursCount    int
	bookingsCount int
	reviewsCount  int
	randomSeed    int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Заполнить пустую базу демонстрационными данными",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		return newSeeder(env).run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntVar(&toursCount, "tours", 30, "Количество туров")
	demoCmd.Flags().IntVar(&bookingsCount, "bookings", 60, "Количество бронирований")
	demoCmd.Flags().IntVar(&reviewsCount, "reviews", 40, "Количество отзывов")
	demoCmd.Flags().Int64Var(&randomSeed, "random-seed", 0, "Seed генератора (0 - текущее время)")
}

// seeder создает данные через те же репозитории и сервисы, что и API
type seeder struct {
	env   *environment
	rnd   *rand.Rand
	today types.Date

	catalog    *catalogRepo.Repository
	tours      *tourRepo.Repository
	users      *userRepo.Repository
	bookings   *bookingRepo.Repository
	reviews    *reviewRepo.Repository
	promotions *promotionRepo.Repository
	favorites  *favoriteRepo.Repository
	ledger     *bookingsService.Service

	countryIDs []int64
	cities     []domain.City
	hotels     []domain.Hotel
	tourIDs    []int64
	clientIDs  []int64
}

func newSeeder(env *environment) *seeder {
	seed := randomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	location, err := env.cfg.Catalog.Location()
	if err != nil {
		location = time.UTC
	}

	db := dbmetrics.Wrap(env.db, nil)
	s := &seeder{
		env:        env,
		rnd:        rand.New(rand.NewSource(seed)),
		today:      types.DateOf(time.Now().In(location)),
		catalog:    catalogRepo.NewRepository(db),
		tours:      tourRepo.NewRepository(db),
		users:      userRepo.NewRepository(db),
		bookings:   bookingRepo.NewRepository(db),
		reviews:    reviewRepo.NewRepository(db),
		promotions: promotionRepo.NewRepository(db),
		favorites:  favoriteRepo.NewRepository(db),
	}
	s.ledger = bookingsService.NewService(s.bookings, s.tours, s.users, txmanager.NewTransactionManager(db), env.log)

	env.log.Info("Demo seed=%d, today=%s", seed, s.today)
	return s
}

func (s *seeder) run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"countries and cities", s.seedCountries},
		{"hotels", s.seedHotels},
		{"users", s.seedUsers},
		{"tours", s.seedTours},
		{"bookings", s.seedBookings},
		{"reviews", s.seedReviews},
		{"promotions", s.seedPromotions},
		{"favorites", s.seedFavorites},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.env.log.Info("Seeded %s", step.name)
	}

	return nil
}

func (s *seeder) seedCountries(ctx context.Context) error {
	for _, c := range demoCountries {
		countryID, err := s.catalog.CreateCountry(ctx, c.name)
		if err != nil {
			return err
		}
		s.countryIDs = append(s.countryIDs, countryID)

		for _, name := range c.cities {
			cityID, err := s.catalog.CreateCity(ctx, name, countryID)
			if err != nil {
				return err
			}
			s.cities = append(s.cities, domain.City{ID: cityID, Name: name, CountryID: countryID})
		}
	}
	return nil
}

func (s *seeder) seedHotels(ctx context.Context) error {
	for _, city := range s.cities {
		if len(s.hotels) > 0 && s.rnd.Intn(3) == 0 {
			continue
		}
		hotel := domain.Hotel{
			Name:        fmt.Sprintf("%s %s", demoHotelPrefixes[s.rnd.Intn(len(demoHotelPrefixes))], city.Name),
			Stars:       domain.MinHotelStars + s.rnd.Intn(domain.MaxHotelStars),
			Address:     fmt.Sprintf("%s, ул. Центральная, %d", city.Name, 1+s.rnd.Intn(99)),
			Description: "Уютный отель для отдыха всей семьей",
			CountryID:   ptr.Ptr(city.CountryID),
			CityID:      ptr.Ptr(city.ID),
		}
		id, err := s.catalog.CreateHotel(ctx, &hotel)
		if err != nil {
			return err
		}
		hotel.ID = id
		s.hotels = append(s.hotels, hotel)
	}
	return nil
}

func (s *seeder) seedUsers(ctx context.Context) error {
	for _, u := range demoUsers {
		created, err := s.users.Create(ctx, &domain.User{
			Username: u.username,
			Email:    u.username + "@example.com",
			Role:     u.role,
		})
		if err != nil {
			return err
		}
		if created.Role == domain.RoleClient {
			s.clientIDs = append(s.clientIDs, created.ID)
		}
	}
	return nil
}

func (s *seeder) seedTours(ctx context.Context) error {
	if len(s.hotels) == 0 {
		return errors.New("no hotels to attach tours to")
	}

	for i := 0; i < toursCount; i++ {
		hotel := s.hotels[s.rnd.Intn(len(s.hotels))]
		category := domain.TourCategories[s.rnd.Intn(len(domain.TourCategories))]

		// Часть туров уже прошла, чтобы витрина и поиск показывали разницу
		start := s.today.AddDays(s.rnd.Intn(150) - 30)
		duration := 3 + s.rnd.Intn(12)

		mainImageID, err := s.catalog.CreateImage(ctx, domain.Image{
			File:    fmt.Sprintf("tours/%d_main.jpg", i+1),
			Caption: hotel.Name,
		})
		if err != nil {
			return err
		}

		tour := &domain.Tour{
			Title:          fmt.Sprintf("%s (%s)", hotel.Name, category),
			CountryID:      hotel.CountryID,
			CityID:         hotel.CityID,
			HotelID:        ptr.Ptr(hotel.ID),
			Price:          decimal.NewFromInt(int64(300 + s.rnd.Intn(2700))).Add(decimal.New(int64(s.rnd.Intn(100)), -2)),
			StartDate:      start,
			EndDate:        start.AddDays(duration),
			AvailableSlots: s.rnd.Intn(21),
			Category:       category,
			Description:    "Тур с проживанием и экскурсионной программой",
			MainImageID:    ptr.Ptr(mainImageID),
		}
		if err := tour.Validate(); err != nil {
			return err
		}

		created, err := s.tours.Create(ctx, tour)
		if err != nil {
			return err
		}
		s.tourIDs = append(s.tourIDs, created.ID)
	}
	return nil
}

// seedBookings создает заявки и подтверждает примерно половину через сервис бронирований,
// поэтому свободные места туров уменьшаются так же, как при работе API
func (s *seeder) seedBookings(ctx context.Context) error {
	confirmed, rejected := 0, 0
	for i := 0; i < bookingsCount; i++ {
		booking, err := domain.NewBooking(
			s.clientIDs[s.rnd.Intn(len(s.clientIDs))],
			s.tourIDs[s.rnd.Intn(len(s.tourIDs))],
			1+s.rnd.Intn(4),
			time.Now(),
		)
		if err != nil {
			return err
		}

		created, err := s.bookings.Create(ctx, booking)
		if err != nil {
			return err
		}

		if s.rnd.Intn(2) == 0 {
			continue
		}
		switch err := s.ledger.Confirm(ctx, created.ID); {
		case err == nil:
			confirmed++
		case errors.Is(err, domain.ErrInsufficientSlots):
			rejected++
		default:
			return err
		}
	}

	s.env.log.Info("Bookings: %d created, %d confirmed, %d left pending for lack of slots",
		bookingsCount, confirmed, rejected)
	return nil
}

func (s *seeder) seedReviews(ctx context.Context) error {
	for i := 0; i < reviewsCount; i++ {
		target := domain.TourTarget(s.tourIDs[s.rnd.Intn(len(s.tourIDs))])
		if s.rnd.Intn(3) == 0 {
			target = domain.HotelTarget(s.hotels[s.rnd.Intn(len(s.hotels))].ID)
		}

		review, err := domain.NewReview(
			s.clientIDs[s.rnd.Intn(len(s.clientIDs))],
			target,
			domain.MinRating+s.rnd.Intn(domain.MaxRating),
			demoReviewTexts[s.rnd.Intn(len(demoReviewTexts))],
			time.Now(),
		)
		if err != nil {
			return err
		}
		if _, err := s.reviews.Create(ctx, review); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedPromotions(ctx context.Context) error {
	for _, p := range demoPromotions {
		promotion := &domain.Promotion{
			Title:       p.title,
			Description: p.description,
			StartDate:   s.today.AddDays(p.startOffset),
			EndDate:     s.today.AddDays(p.endOffset),
			TourIDs:     s.pickTours(3),
			CountryIDs:  []int64{s.countryIDs[s.rnd.Intn(len(s.countryIDs))]},
		}
		if _, err := s.promotions.Create(ctx, promotion); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedFavorites(ctx context.Context) error {
	for _, userID := range s.clientIDs {
		for _, tourID := range s.pickTours(1 + s.rnd.Intn(3)) {
			if err := s.favorites.Add(ctx, userID, tourID); err != nil {
				return err
			}
		}
	}
	return nil
}

// pickTours n случайных различных туров
func (s *seeder) pickTours(n int) []int64 {
	if n > len(s.tourIDs) {
		n = len(s.tourIDs)
	}
	picked := make([]int64, 0, n)
	for _, i := range s.rnd.Perm(len(s.tourIDs))[:n] {
		picked = append(picked, s.tourIDs[i])
	}
	return picked
}
