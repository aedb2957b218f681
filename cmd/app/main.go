package main

import (
	"fmt"
	"log/slog"
	"os"

	"haulage/cmd"
	"haulage/internal/adapters/in/http"
	"haulage/internal/adapters/out/postgres/assignmentrepo"
	"haulage/internal/adapters/out/postgres/driverrepo"
	"haulage/internal/adapters/out/postgres/orderrepo"
	"haulage/internal/adapters/out/postgres/vehiclerepo"
	"haulage/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrateDatabase(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateGetExpiringDocumentsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		slog.Error("Error loading .env file", "error", err)
		os.Exit(1)
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateMarkOrderLoadedCommandHandler(),
		app.CreateMarkOrderEnrouteCommandHandler(),
		app.CreateMarkOrderDeliveredCommandHandler(),
		app.CreateRequestOrderPaymentCommandHandler(),
		app.CreateConfirmOrderPaymentCommandHandler(),
		app.CreateCloseOrderCommandHandler(),
		app.CreatePairTruckTrailerCommandHandler(),
		app.CreateUnpairTruckTrailerCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveAssignmentsQueryHandler(),
		app.CreateGetAssignmentHistoryQueryHandler(),
		app.CreateGetExpiringDocumentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
