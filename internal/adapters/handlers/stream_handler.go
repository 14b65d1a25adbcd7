package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const snapshotEvent = "snapshot"

// Stream отдает снимки парка после каждого тика как Server-Sent Events.
// @Summary Поток телеметрии
// @Description Первое событие содержит текущее состояние, далее по событию на каждый тик.
// @Tags Stream
// @Produce text/event-stream
// @Success 200 {array} models.MachineSnapshot
// @Router /stream [get]
func (h *Handler) Stream(c *gin.Context) {
	id, updates, cancel := h.stream.Subscribe()
	defer cancel()

	h.logger.Info("Stream subscriber connected", "subscriberID", id, "client_ip", c.ClientIP())
	defer h.logger.Info("Stream subscriber disconnected", "subscriberID", id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.SSEvent(snapshotEvent, h.usecase.ListMachines())
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snapshots, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent(snapshotEvent, snapshots)
			c.Writer.Flush()
		}
	}
}
