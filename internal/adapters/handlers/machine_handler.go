package handlers

import (
	"net/http"

	"github.com/iwtcode/cncSimulator/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetMachines возвращает снимки всех станков парка.
// @Summary Получить список станков
// @Description Возвращает текущее состояние всех станков в порядке регистрации.
// @Tags Machines
// @Produce json
// @Success 200 {object} models.GetMachinesResponse "Список станков"
// @Router /machines [get]
func (h *Handler) GetMachines(c *gin.Context) {
	machines := h.usecase.ListMachines()
	c.JSON(http.StatusOK, models.GetMachinesResponse{
		Status:   "ok",
		Count:    len(machines),
		Machines: machines,
	})
}

// GetMachine возвращает снимок одного станка.
// @Summary Получить станок
// @Tags Machines
// @Produce json
// @Param id path string true "ID станка" example(haas_vf2)
// @Success 200 {object} models.GetMachineResponse "Состояние станка"
// @Failure 404 {object} models.ErrorResponse "Станок не найден"
// @Router /machines/{id} [get]
func (h *Handler) GetMachine(c *gin.Context) {
	snap, err := h.usecase.GetMachine(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GetMachineResponse{Status: "ok", Machine: snap})
}

// GetAlarms возвращает активные аварии по всему парку.
// @Summary Активные аварии
// @Tags Alarms
// @Produce json
// @Success 200 {object} models.GetAlarmsResponse "Активные аварии"
// @Router /alarms [get]
func (h *Handler) GetAlarms(c *gin.Context) {
	c.JSON(http.StatusOK, models.GetAlarmsResponse{Status: "ok", Alarms: h.usecase.ListAlarms()})
}

// MTConnectCurrent возвращает текущее состояние станка в формате MTConnect.
// @Summary MTConnect current
// @Tags MTConnect
// @Produce xml
// @Param id path string true "ID станка"
// @Success 200 {string} string "MTConnectStreams"
// @Failure 404 {object} models.ErrorResponse "Станок не найден"
// @Router /mtconnect/{id}/current [get]
func (h *Handler) MTConnectCurrent(c *gin.Context) {
	body, err := h.usecase.MTConnectCurrent(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Health сообщает о состоянии сервиса.
// @Summary Проверка состояния
// @Tags Service
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:        "ok",
		Machines:      len(h.usecase.ListMachines()),
		TickerRunning: h.ticker.IsRunning(),
		Subscribers:   h.stream.Subscribers(),
	})
}
