package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/inventoryrepo"
	"logistics/internal/adapters/out/postgres/reservationrepo"
	"logistics/internal/adapters/out/postgres/routeplanrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.ClosePublisher(5 * time.Second)

	jobManager := jobs.NewJobManager(app.CreateReleaseExpiredHoldsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:           goDotEnvVariable("KAFKA_HOST"),
		KafkaSelectionTopic: goDotEnvVariable("KAFKA_SELECTION_TOPIC"),
		RedisHost:           goDotEnvVariable("REDIS_HOST"),
		ManifestOutputDir:   goDotEnvVariable("MANIFEST_OUTPUT_DIR"),
		ManifestPDFRenderer: goDotEnvVariable("MANIFEST_PDF_RENDERER"),
		ManifestBaseURL:     goDotEnvVariable("MANIFEST_BASE_URL"),
		DefaultCurrency:     goDotEnvVariable("DEFAULT_CURRENCY"),
		SystemActor:         goDotEnvVariable("SYSTEM_ACTOR"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&routeplanrepo.LegDTO{},
		&routeplanrepo.PlanDTO{},
		&reservationrepo.ReservationDTO{},
		&reservationrepo.HubCapacityDTO{},
		&inventoryrepo.HoldDTO{},
		&inventoryrepo.HubStockDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateSelectRouteCommandHandler(),
		app.CreateGetRoutePlanQueryHandler(),
		app.CreateGetHubCapacityQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
