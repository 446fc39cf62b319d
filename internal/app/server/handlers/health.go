package handlers

import (
	"encoding/json"
	"net/http"
)

type RoomCounter interface {
	Rooms() int
}

type HealthHandler struct {
	rooms RoomCounter
	ws    *WSHandler
}

func NewHealthHandler(rooms RoomCounter, ws *WSHandler) *HealthHandler {
	return &HealthHandler{rooms: rooms, ws: ws}
}

func (h *HealthHandler) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"rooms":       h.rooms.Rooms(),
		"connections": h.ws.Connections(),
	})
}
