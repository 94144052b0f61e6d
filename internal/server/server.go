package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/catalog"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/gameday"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/httpmw"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/store"
	"github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/internal/tracker"
	staticfiles "github.com/hyyerrfocus/wz-guild-tracker-hyyerr-app/static"
)

type Options struct {
	DataDir     string
	StoreEngine string
	CatalogPath string
	Logger      *log.Logger

	// ClockInterval overrides the countdown push cadence (tests).
	ClockInterval time.Duration
}

// OptionsFromEnv reads the deployment knobs, falling back to defaults.
func OptionsFromEnv() Options {
	return Options{
		DataDir:     envString("TRACKER_DATA_DIR", "data"),
		StoreEngine: envString("TRACKER_STORE_ENGINE", store.EngineJSON),
		CatalogPath: envString("TRACKER_CATALOG", "catalog.yml"),
	}
}

// Addr is the listen address for the server binary.
func Addr() string {
	return envString("TRACKER_ADDR", ":8787")
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// NewHandler builds the full HTTP surface: tracker API, countdown
// websocket, health endpoints, and the embedded static shell.
func NewHandler(opts Options) (http.Handler, error) {
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Minute
	}

	cat, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return nil, err
	}

	st, err := store.NewByEngine(opts.StoreEngine, storePath(opts.DataDir, opts.StoreEngine))
	if err != nil {
		return nil, err
	}

	days, err := gameday.NewResolver()
	if err != nil {
		return nil, err
	}

	tr, err := tracker.New(cat, st, days)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		tracker:       tr,
		logger:        opts.Logger,
		clockInterval: opts.ClockInterval,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/readyz", h.Readyz)

	mux.HandleFunc("/api/catalog", h.Catalog)
	mux.HandleFunc("/api/day", h.Day)
	mux.HandleFunc("/api/day/start", h.DayStart)
	mux.HandleFunc("/api/day/update", h.DayUpdate)
	mux.HandleFunc("/api/history", h.History)
	mux.HandleFunc("/api/history/edit", h.HistoryEdit)
	mux.HandleFunc("/api/notes", h.Note)
	mux.HandleFunc("/api/season/new", h.SeasonNew)
	mux.HandleFunc("/api/season/switch", h.SeasonSwitch)
	mux.HandleFunc("/api/clock", h.Clock)
	mux.HandleFunc("/ws/clock", h.ClockSocket)

	mux.Handle("/", http.FileServer(http.FS(staticfiles.EmbeddedFS())))

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func storePath(dataDir, engine string) string {
	if strings.EqualFold(strings.TrimSpace(engine), store.EngineSQLite) {
		return filepath.Join(dataDir, "tracker.db")
	}
	return filepath.Join(dataDir, "tracker.json")
}
