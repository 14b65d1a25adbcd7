package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/iwtcode/cncSimulator/internal/adapters/repositories/postgres/machine_definition"
	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/domain/entities"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	interfaces.MachineDefinitionRepository
}

func NewRepository(cfg *config.AppConfig, appLogger *logging.Logger) (interfaces.MachineDefinitionRepository, error) {
	// Шаг 1: Подключение к служебной БД 'postgres' для проверки и создания целевой БД
	dsnPostgres := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Port,
	)

	db, err := gorm.Open(postgres.Open(dsnPostgres), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к служебной БД 'postgres': %w", err)
	}

	// Шаг 2: Создаем целевую БД, если ее нет
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)"
	if err := db.Raw(query, cfg.Database.DBName).Scan(&exists).Error; err != nil {
		return nil, fmt.Errorf("не удалось проверить существование БД '%s': %w", cfg.Database.DBName, err)
	}
	if !exists {
		appLogger.Info("Database not found. Creating...", "db_name", cfg.Database.DBName)
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.Database.DBName)).Error; err != nil {
			return nil, fmt.Errorf("не удалось создать БД '%s': %w", cfg.Database.DBName, err)
		}
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	// Шаг 3: Основное подключение к целевой базе данных
	dsnApp := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.Port,
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	appDb, err := gorm.Open(postgres.Open(dsnApp), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных '%s': %w", cfg.Database.DBName, err)
	}

	if err := appDb.AutoMigrate(&entities.MachineDefinition{}); err != nil {
		return nil, fmt.Errorf("ошибка выполнения автомиграций: %w", err)
	}

	repo := machine_definition.NewMachineDefinitionRepository(appDb)
	if err := SeedDefaults(repo, appLogger); err != nil {
		return nil, err
	}

	return &Repository{MachineDefinitionRepository: repo}, nil
}

// SeedDefaults заполняет пустую таблицу встроенным составом цеха.
func SeedDefaults(repo interfaces.MachineDefinitionRepository, appLogger *logging.Logger) error {
	n, err := repo.Count()
	if err != nil {
		return fmt.Errorf("не удалось посчитать описания станков: %w", err)
	}
	if n > 0 {
		return nil
	}

	for i, def := range entities.DefaultFleet() {
		def.Position = i
		if err := repo.Save(&def); err != nil {
			return fmt.Errorf("не удалось сохранить описание '%s': %w", def.ID, err)
		}
	}
	appLogger.Info("Machine definitions table seeded with the default fleet", "count", len(entities.DefaultFleet()))
	return nil
}
