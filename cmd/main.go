package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/config"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/endpoints"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/service"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/transport"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/logger"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/weather"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/wiki"
)

// @title           MCP Travel Assistant API
// @version         0.0.1
// @description     HTTP tool server for a travel assistant agent
// @host      localhost:3000
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	if cfg.Weather.APIKey == "" {
		slog.WarnContext(ctx, "WEATHER_API_KEY is not set, /clima will fail until it is configured")
	}

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	wikiClient := wiki.NewClient(cfg.Wiki.Lang, cfg.Wiki.Timeout)
	weatherClient := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.Lang, cfg.Weather.Timeout)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return endpoints.MakeEndpoints(
		service.NewCatalogService(),
		service.NewWikiService(wikiClient),
		service.NewWeatherService(weatherClient, cfg.Weather.APIKey),
		service.NewOfferService(rng),
		service.NewAdviceService(),
	)
}
