// Command mock-weather-server serves canned weatherapi.com documents for local
// development. Point WEATHER_API_BASE_URL at it.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"weatherlookup.app/internal/fakeupstream"
	"weatherlookup.app/pkg/logger"
)

type serverConfig struct {
	Port   int    `envconfig:"MOCK_WEATHER_PORT" default:"8081"`
	APIKey string `envconfig:"MOCK_WEATHER_API_KEY" default:"test-api-key"`
}

func main() {
	log := logger.NewWithWriter(os.Stdout, logger.Options{Level: slog.LevelInfo, Format: "json"})

	var cfg serverConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           fakeupstream.NewServer(cfg.APIKey).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("Starting mock weather server", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Error("Mock weather server stopped", "error", err)
		os.Exit(1)
	}
}
