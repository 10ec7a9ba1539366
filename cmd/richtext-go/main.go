package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/oakfieldmedia/richtext-go/config"
	"github.com/oakfieldmedia/richtext-go/internal/application/services"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/tabular"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/handlers"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/routes"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	logger := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: true,
		OutputToFile:    config.LogToFile(),
		LogDirectory:    config.LogDirectory(),
		JSONFormat:      config.LogJSON(),
		Level:           slog.LevelInfo,
	})
	logger.Startup().Info("Starting richtext renderer service")

	if config.PaymentBusinessID() == "" {
		logger.Startup().Warn("PAYMENT_BUSINESS_ID is not set; commerce forms will render without a recipient")
	}

	fetchClient := &http.Client{Timeout: config.FetchTimeout()}
	materializer := services.NewSpreadsheetMaterializer(fetchClient, tabular.NewCSVParser(), logger)
	renderService := services.NewRenderService(logger, materializer, config.PaymentBusinessID())
	renderHandlers := handlers.NewRenderHandlers(renderService, logger)

	srv := server.New(renderHandlers, routes.Config{
		AllowedOrigins:   config.AllowedOrigins(),
		JWTSecret:        config.JWTSecret(),
		MaxDocumentBytes: int64(config.MaxDocumentBytes()),
	}, logger)

	if err := srv.Run(config.ListenAddress()); err != nil {
		logger.System().Error("HTTP server exited", "error", err)
		log.Fatalf("server error: %v", err)
	}
}
