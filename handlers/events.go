package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tokusound/websocket"
)

// EventsHandler handles WebSocket subscriptions to submission events
type EventsHandler struct {
	hub websocket.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub websocket.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// SubscribeAll upgrades the connection and subscribes it to submission
// events for every category
func (h *EventsHandler) SubscribeAll(c *gin.Context) {
	h.subscribe(c, "all")
}

// SubscribeCategory upgrades the connection and subscribes it to
// submission events for one category
func (h *EventsHandler) SubscribeCategory(c *gin.Context) {
	h.subscribe(c, c.Param("category"))
}

func (h *EventsHandler) subscribe(c *gin.Context, category string) {
	upgrader := websocket.GetUpgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn, category)
	h.hub.RegisterClient(client)
	client.StartPumps()
}
