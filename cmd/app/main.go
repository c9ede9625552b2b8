package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/thtta/farmlend/cmd"
	apphttp "github.com/thtta/farmlend/internal/adapters/in/http"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPurgeRetentionDays = 30

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ensureDatabase(configs)

	gormDB := connectGorm(configs)
	migrateSchema(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeRemovedRecordsCommandHandler(),
		configs.PurgeSchedule,
		time.Duration(configs.PurgeRetentionDays)*24*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		PurgeSchedule:      goDotEnvVariable("PURGE_SCHEDULE"),
		PurgeRetentionDays: defaultPurgeRetentionDays,
	}

	if config.PurgeSchedule == "" {
		// Daily at 03:00.
		config.PurgeSchedule = "0 3 * * *"
	}
	if days, err := strconv.Atoi(os.Getenv("PURGE_RETENTION_DAYS")); err == nil && days > 0 {
		config.PurgeRetentionDays = days
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

// ensureDatabase creates the application database when it does not exist
// yet. GORM cannot connect to a missing database, so this goes through
// database/sql with the pq driver against the maintenance database.
func ensureDatabase(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to maintenance database: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func connectGorm(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&organizationrepo.OrganizationDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ReferencedOrderDTO{},
		&orderrepo.LineItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	server := apphttp.NewServer(
		apphttp.CommandHandlers{
			CreateOrganization: app.CreateCreateOrganizationCommandHandler(),
			UpdateOrganization: app.CreateUpdateOrganizationCommandHandler(),
			DeleteOrganization: app.CreateDeleteOrganizationCommandHandler(),
			CreateProduct:      app.CreateCreateProductCommandHandler(),
			UpdateProduct:      app.CreateUpdateProductCommandHandler(),
			DeleteProduct:      app.CreateDeleteProductCommandHandler(),
			CreateOrder:        app.CreateCreateOrderCommandHandler(),
			UpdateOrder:        app.CreateUpdateOrderCommandHandler(),
			DeleteOrder:        app.CreateDeleteOrderCommandHandler(),
		},
		apphttp.QueryHandlers{
			GetAllOrganizations: app.CreateGetAllOrganizationsQueryHandler(),
			GetOrganization:     app.CreateGetOrganizationQueryHandler(),
			GetAllProducts:      app.CreateGetAllProductsQueryHandler(),
			GetProduct:          app.CreateGetProductQueryHandler(),
			GetAllOrders:        app.CreateGetAllOrdersQueryHandler(),
			GetOrder:            app.CreateGetOrderQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
