package handlers

import (
	"net/http"

	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
	"github.com/iwtcode/cncSimulator/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	ticker  interfaces.TickerControl
	stream  interfaces.SnapshotStream
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, ticker interfaces.TickerControl, stream interfaces.SnapshotStream, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		ticker:  ticker,
		stream:  stream,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health)
		v1.GET("/alarms", h.GetAlarms)
		v1.GET("/stream", h.Stream)
		v1.GET("/mtconnect/:id/current", h.MTConnectCurrent)

		machines := v1.Group("/machines")
		{
			machines.GET("", h.GetMachines)
			machines.GET("/:id", h.GetMachine)
			machines.POST("/:id/power", h.SetPower)
			machines.POST("/:id/alarm", h.InjectAlarm)
			machines.DELETE("/:id/alarm", h.ClearAlarm)
			machines.POST("/:id/tools/:number/replace", h.ReplaceTool)
		}
	}

	return router
}
