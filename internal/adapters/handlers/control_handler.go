package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/iwtcode/cncSimulator/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// SetPower включает или выключает питание станка.
// @Summary Управление питанием
// @Description Без поля "on" (или с пустым телом) питание переключается в противоположное состояние.
// @Tags Control
// @Accept json
// @Produce json
// @Param id path string true "ID станка"
// @Param input body models.PowerRequest false "Требуемое состояние питания"
// @Success 200 {object} models.GetMachineResponse "Состояние станка после изменения"
// @Failure 400 {object} models.ErrorResponse "Поле on не является булевым"
// @Failure 404 {object} models.ErrorResponse "Станок не найден"
// @Router /machines/{id}/power [post]
func (h *Handler) SetPower(c *gin.Context) {
	var req models.PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.BadRequest(c, err, "Invalid power request")
		return
	}

	snap, err := h.usecase.SetPower(c.Param("id"), req.On)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GetMachineResponse{Status: "ok", Machine: snap})
}

// InjectAlarm принудительно выставляет аварию.
// @Summary Выставить аварию
// @Description Принимается любой код. Пустой код заменяется на TEST_ALARM.
// @Tags Control
// @Accept json
// @Produce json
// @Param id path string true "ID станка"
// @Param input body models.AlarmRequest false "Код аварии"
// @Success 200 {object} models.GetMachineResponse
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Станок не найден"
// @Router /machines/{id}/alarm [post]
func (h *Handler) InjectAlarm(c *gin.Context) {
	var req models.AlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.BadRequest(c, err, "Invalid alarm request")
		return
	}

	snap, err := h.usecase.InjectAlarm(c.Param("id"), req.Alarm)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GetMachineResponse{Status: "ok", Machine: snap})
}

// ClearAlarm сбрасывает аварию.
// @Summary Сбросить аварию
// @Tags Control
// @Produce json
// @Param id path string true "ID станка"
// @Success 200 {object} models.GetMachineResponse
// @Failure 404 {object} models.ErrorResponse "Станок не найден"
// @Router /machines/{id}/alarm [delete]
func (h *Handler) ClearAlarm(c *gin.Context) {
	snap, err := h.usecase.ClearAlarm(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GetMachineResponse{Status: "ok", Machine: snap})
}

// ReplaceTool восстанавливает ресурс инструмента.
// @Summary Заменить инструмент
// @Tags Control
// @Produce json
// @Param id path string true "ID станка"
// @Param number path int true "Номер инструмента в магазине"
// @Success 200 {object} models.GetMachineResponse
// @Failure 400 {object} models.ErrorResponse "Неверный номер инструмента"
// @Failure 404 {object} models.ErrorResponse "Станок или инструмент не найден"
// @Failure 409 {object} models.ErrorResponse "Инструмент в работе"
// @Router /machines/{id}/tools/{number}/replace [post]
func (h *Handler) ReplaceTool(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		h.BadRequest(c, err, fmt.Sprintf("Invalid tool number '%s'", c.Param("number")))
		return
	}

	snap, err := h.usecase.ReplaceTool(c.Param("id"), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GetMachineResponse{Status: "ok", Machine: snap})
}
