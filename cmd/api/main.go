package main

import (
	"net/http"
	"os"
	"time"

	"reptile-husbandry/internal/platform/logger"
	"reptile-husbandry/internal/router"
)

// @title Reptile Husbandry API
// @version 1.0
// @description Backend multi-tenant de registros de husbandry: reptiles, feedings, mediciones y schedules por usuario.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{
		Secret: os.Getenv("JWT_SECRET"),
		Log:    log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
