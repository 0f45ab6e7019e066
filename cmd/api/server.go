package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"musiccatalog/internal/app/activity"
	"musiccatalog/internal/app/playlists"
	"musiccatalog/internal/app/songs"
	"musiccatalog/internal/app/users"
	"musiccatalog/internal/config"
	"musiccatalog/internal/database"
	"musiccatalog/internal/http/middleware"
	"musiccatalog/internal/httpapi"
	"musiccatalog/internal/store"
)

func newHTTPHandler(cfg *config.Config, db *database.Provider) http.Handler {
	dataStore := store.New(db)

	api := httpapi.New(
		songs.New(dataStore),
		users.New(dataStore),
		playlists.New(dataStore),
		activity.New(dataStore),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	// Metrics sits directly above the API mux so it sees the matched pattern.
	mux.Handle("/", metrics.Middleware()(api.Routes()))

	return middleware.Chain(mux,
		middleware.RequestLogging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
}
