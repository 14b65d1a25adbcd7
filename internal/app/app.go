package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/iwtcode/cncSimulator/internal/adapters/handlers"
	"github.com/iwtcode/cncSimulator/internal/adapters/repositories/builtin"
	"github.com/iwtcode/cncSimulator/internal/adapters/repositories/file"
	"github.com/iwtcode/cncSimulator/internal/adapters/repositories/postgres"
	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	"github.com/iwtcode/cncSimulator/internal/middleware/swagger"
	"github.com/iwtcode/cncSimulator/internal/services/broadcast"
	"github.com/iwtcode/cncSimulator/internal/services/fleet_service"
	"github.com/iwtcode/cncSimulator/internal/services/kafka"
	"github.com/iwtcode/cncSimulator/internal/services/mqtt"
	"github.com/iwtcode/cncSimulator/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New(opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Options(opts...),
		ConfigModule,
		LoggingModule,
		FleetModule,
		PublisherModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Тикер запускается после того, как все издатели готовы
		fx.Invoke(InvokeTicker),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.AppConfig) *logging.Logger {
	logger := NewLogger(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

// NewLogger создает корневой логгер приложения по конфигурации.
func NewLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "CncSimulator")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

// ProvideFleetSource выбирает источник описаний парка по FLEET_SOURCE.
func ProvideFleetSource(cfg *config.AppConfig, logger *logging.Logger) (interfaces.FleetSource, error) {
	switch cfg.Fleet.Source {
	case config.FleetSourceFile:
		logger.Info("Loading fleet from file", "path", cfg.Fleet.File)
		return file.NewSource(cfg.Fleet.File), nil
	case config.FleetSourcePostgres:
		logger.Info("Loading fleet from database", "db_name", cfg.Database.DBName)
		return postgres.NewRepository(cfg, logger)
	default:
		return builtin.NewSource(), nil
	}
}

// BuildRegistry загружает описания и строит реестр станков.
func BuildRegistry(source interfaces.FleetSource, cfg *config.AppConfig, logger *logging.Logger) (*fleet_service.Registry, error) {
	defs, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить описания парка: %w", err)
	}
	registry, err := fleet_service.NewRegistryFromDefinitions(defs, cfg.Simulation.Seed)
	if err != nil {
		return nil, fmt.Errorf("не удалось построить реестр станков: %w", err)
	}
	logger.Info("Fleet registry built", "machines", registry.Len(), "seed", cfg.Simulation.Seed)
	return registry, nil
}

var FleetModule = fx.Module("fleet_module",
	fx.Provide(
		ProvideFleetSource,
		BuildRegistry,
	),
)

// ProvidePublishers собирает издателей снимков. SSE-хаб подключен всегда,
// Kafka и MQTT - по конфигурации.
func ProvidePublishers(lc fx.Lifecycle, cfg *config.AppConfig, hub *broadcast.Hub, logger *logging.Logger) ([]interfaces.SnapshotPublisher, error) {
	publishers := []interfaces.SnapshotPublisher{hub}

	if cfg.Kafka.Enable {
		producer, err := kafka.NewKafkaProducer(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Kafka publisher enabled", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.Topic)
		publishers = append(publishers, producer)
	}

	if cfg.Mqtt.Enable {
		publisher, err := mqtt.NewMqttPublisher(cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("MQTT publisher enabled", "broker", cfg.Mqtt.Broker, "prefix", cfg.Mqtt.TopicPrefix)
		publishers = append(publishers, publisher)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			for _, p := range publishers {
				if err := p.Close(); err != nil {
					logger.Warn("Failed to close publisher", "publisher", p.Name(), "error", err)
				}
			}
			return nil
		},
	})
	return publishers, nil
}

var PublisherModule = fx.Module("publisher_module",
	fx.Provide(
		broadcast.NewHub,
		func(h *broadcast.Hub) interfaces.SnapshotStream { return h },
		ProvidePublishers,
	),
)

func ProvideTicker(registry *fleet_service.Registry, publishers []interfaces.SnapshotPublisher, cfg *config.AppConfig, logger *logging.Logger) *fleet_service.Ticker {
	return fleet_service.NewTicker(registry, publishers, cfg.Simulation.TickInterval, logger)
}

var ServiceModule = fx.Module("service_module",
	fx.Provide(
		ProvideTicker,
		func(t *fleet_service.Ticker) interfaces.TickerControl { return t },
		fleet_service.NewFleetService,
	),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeTicker запускает тикер вместе с приложением.
func InvokeTicker(lc fx.Lifecycle, ticker interfaces.TickerControl, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// ctx хука живет только на время запуска
			if err := ticker.Start(context.Background()); err != nil {
				logger.Error("Failed to start ticker", "error", err)
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping ticker...")
			ticker.Stop()
			return nil
		},
	})
}

// NewHttpServer собирает HTTP-сервер. Потоки SSE не завершаются сами,
// поэтому хаб закрывается в начале Shutdown.
func NewHttpServer(addr string, h http.Handler, hub *broadcast.Hub, logger *logging.Logger) *http.Server {
	// WriteTimeout не задан: /stream держит соединение открытым
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	server.RegisterOnShutdown(func() {
		logger.Info("Closing stream subscribers", "subscribers", hub.Subscribers())
		_ = hub.Close()
	})
	return server
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, hub *broadcast.Hub, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := NewHttpServer(serverAddr, h, hub, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
