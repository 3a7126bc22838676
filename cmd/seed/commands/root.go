package commands

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TourService/internal/config"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Утилита подготовки базы данных SMC-TourService",
	Long: `Применяет схему и заполняет базу демонстрационными данными:
страны и города, отели, туры, пользователи, бронирования, отзывы, акции и избранное.

Примеры:
  seed migrate --config config.toml
  seed demo --tours 30 --random-seed 42`,
	SilenceUsage: true,
}

// Execute запускает корневую команду
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Путь к файлу конфигурации")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Уровень логирования")
}

// environment общие зависимости подкоманд
type environment struct {
	cfg *config.Config
	log *logger.Logger
	db  *sql.DB
}

func openEnvironment() (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New("", logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &environment{cfg: cfg, log: log, db: db}, nil
}

func (e *environment) Close() {
	e.db.Close()
	e.log.Close()
}
