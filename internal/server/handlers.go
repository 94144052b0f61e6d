package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/model"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/scoring"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/tracker"
)

type Handler struct {
	tracker       *tracker.Tracker
	logger        *log.Logger
	clockInterval time.Duration
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "wz-guild-tracker",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if _, err := h.tracker.Summary(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": "store unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "wz-guild-tracker",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.tracker.Catalog())
}

type startDayRequest struct {
	Name string `json:"name"`
}

func (h *Handler) DayStart(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req startDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	progress, err := h.tracker.StartDay(req.Name)
	if err != nil {
		if errors.Is(err, tracker.ErrNameRequired) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	summary, err := h.tracker.Summary()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"progress": progress,
		"summary":  summary,
	})
}

func (h *Handler) Day(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	progress, started, err := h.tracker.TodayProgress()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	summary, err := h.tracker.Summary()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	cat := h.tracker.Catalog()
	worlds := make([]map[string]any, 0, len(cat.Worlds))
	for _, world := range cat.Worlds {
		worlds = append(worlds, map[string]any{
			"num":        world.Num,
			"completion": scoring.WorldCompletion(progress, world),
		})
	}

	resp := map[string]any{
		"started": started,
		"summary": summary,
		"worlds":  worlds,
		"resetIn": h.tracker.UntilReset(),
	}
	if started {
		resp["progress"] = progress
	}
	if name, ok, _ := h.tracker.PlayerName(); ok {
		resp["playerName"] = name
	}
	writeJSON(w, http.StatusOK, resp)
}

// updateRequest is the transport shape for one checkbox or number-field
// change. Category selects which typed update runs.
type updateRequest struct {
	Category string `json:"category"`
	Key      string `json:"key,omitempty"`
	Done     bool   `json:"done,omitempty"`
	Floor    int    `json:"floor,omitempty"`
	Tier     string `json:"tier,omitempty"`
}

func (h *Handler) DayUpdate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req updateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	var (
		summary tracker.Summary
		err     error
	)
	switch strings.TrimSpace(req.Category) {
	case "dungeons":
		summary, err = h.tracker.SetDungeon(req.Key, req.Done)
	case "worldEvents":
		summary, err = h.tracker.SetWorldEvent(req.Key, req.Done)
	case "towers":
		summary, err = h.tracker.SetTower(req.Key, req.Done)
	case "infiniteTower":
		summary, err = h.tracker.SetInfiniteFloor(req.Floor)
	case "guildQuests":
		summary, err = h.tracker.SetGuildQuest(model.QuestTier(req.Tier), req.Done)
	default:
		writeErr(w, http.StatusBadRequest, "unknown category: "+req.Category)
		return
	}
	if err != nil {
		if errors.Is(err, tracker.ErrDayNotStarted) {
			writeErr(w, http.StatusConflict, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": summary})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	recent, err := h.tracker.Recent()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	notes, err := h.tracker.Notes()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	summary, err := h.tracker.Summary()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	current, err := h.tracker.CurrentSeason()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"season":        h.tracker.ViewedSeason(),
		"currentSeason": current,
		"recent":        recent,
		"notes":         notes,
		"summary":       summary,
	})
}

// editRequest accepts points as any JSON value; anything non-numeric
// falls back to 0, matching the point-edit modal.
type editRequest struct {
	Date   string          `json:"date"`
	Points json.RawMessage `json:"points"`
}

func (h *Handler) HistoryEdit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req editRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		writeErr(w, http.StatusBadRequest, "date is required")
		return
	}
	if err := h.tracker.EditPoints(req.Date, coercePoints(req.Points)); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	summary, err := h.tracker.Summary()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": summary})
}

func coercePoints(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

type noteRequest struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

func (h *Handler) Note(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		writeErr(w, http.StatusBadRequest, "date is required")
		return
	}
	if err := h.tracker.SetNote(req.Date, req.Text); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) SeasonNew(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	season, err := h.tracker.StartNewSeason()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"season": season})
}

type switchRequest struct {
	Season int `json:"season"`
}

func (h *Handler) SeasonSwitch(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req switchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	season, err := h.tracker.SwitchSeason(req.Season)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"season": season})
}

func (h *Handler) Clock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.clockPayload())
}
