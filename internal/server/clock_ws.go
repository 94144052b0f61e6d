package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/gameday"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user local deployment; the shell is served same-origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

type clockPayload struct {
	Day     string            `json:"day"`
	Points  int               `json:"points"`
	Goal    int               `json:"goal"`
	ResetIn gameday.Countdown `json:"resetIn"`
	Display string            `json:"display"`
}

func (h *Handler) clockPayload() clockPayload {
	points := 0
	if summary, err := h.tracker.Summary(); err == nil {
		points = summary.Points
	}
	countdown := h.tracker.UntilReset()
	return clockPayload{
		Day:     h.tracker.Today(),
		Points:  points,
		Goal:    h.tracker.Catalog().DailyGoal,
		ResetIn: countdown,
		Display: countdown.String(),
	}
}

// ClockSocket pushes the reset countdown and live score on connect and
// then once per interval, until the client goes away.
func (h *Handler) ClockSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("clock socket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(h.clockPayload()); err != nil {
		return
	}

	ticker := time.NewTicker(h.clockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteJSON(h.clockPayload()); err != nil {
				return
			}
		}
	}
}
