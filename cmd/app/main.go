package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"hangar/cmd"
	"hangar/internal/adapters/out/postgres/lineitemrepo"
	"hangar/internal/adapters/out/postgres/shoprepo"
	"hangar/internal/adapters/out/postgres/timesheetrepo"
	"hangar/internal/adapters/out/postgres/workorderrepo"
	"hangar/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "hangar/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateWorkOrderRepository(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustConnectDB opens the database through lib/pq so driver errors keep their
// Postgres error codes, then wraps the connection with GORM and applies the
// schema migrations.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shoprepo.ShopDTO{},
		&workorderrepo.WorkOrderDTO{},
		&timesheetrepo.TimesheetEntryDTO{},
		&lineitemrepo.LineItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateChangeWorkOrderStatusCommandHandler(),
		app.CreateAddLineItemCommandHandler(),
		app.CreateLogTimesheetEntryCommandHandler(),
		app.CreateApproveTimesheetEntryCommandHandler(),
		app.CreateRecordMeterReadingsCommandHandler(),
		app.CreateGetWorkOrdersQueryHandler(),
		app.CreateGetWorkOrderQueryHandler(),
		app.CreateGetWorkOrderInvoiceQueryHandler(),
		app.CreateGetLineItemsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
