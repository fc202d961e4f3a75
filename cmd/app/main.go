package main

import (
	"fmt"
	"log/slog"
	"os"

	"eats/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	root, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := root.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		PaymentProviderName:    goDotEnvVariable("PAYMENT_PROVIDER_NAME"),
		PaymentProviderAPIKey:  goDotEnvVariable("PAYMENT_PROVIDER_API_KEY"),
		BehaviorReportSchedule: goDotEnvVariable("BEHAVIOR_REPORT_SCHEDULE"),
		GatewayHealthSchedule:  goDotEnvVariable("GATEWAY_HEALTH_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
