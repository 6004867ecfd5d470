package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/pkg/websocket"
)

// EventController serves the live registry event feed
type EventController struct {
	hub    *websocket.Hub
	logger zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(hub *websocket.Hub, logger zerolog.Logger) *EventController {
	return &EventController{
		hub:    hub,
		logger: logger,
	}
}

// Stream upgrades to a WebSocket and pushes one JSON event per frame
// @Summary Stream registry events
// @Description Upgrades the connection to a WebSocket carrying enrollment, drop, grade and cancellation events
// @Tags events
// @Param sectionNo query string false "Only events of this section"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {string} string "Not a WebSocket handshake"
// @Router /events/ws [get]
func (c *EventController) Stream(ctx *gin.Context) {
	sectionNo := ctx.Query("sectionNo")
	if err := c.hub.ServeWS(ctx.Writer, ctx.Request, sectionNo); err != nil {
		c.logger.Warn().Err(err).Str("sectionNo", sectionNo).Msg("Failed to upgrade connection to WebSocket")
	}
}
