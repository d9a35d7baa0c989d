package app

import (
	"fmt"
	"log"
	"os"

	"github.com/sahilchouksey/studystack-api/api"
	"github.com/sahilchouksey/studystack-api/config"
	"github.com/sahilchouksey/studystack-api/database"
	"github.com/sahilchouksey/studystack-api/router"
	"github.com/sahilchouksey/studystack-api/services/cron"
	"github.com/sahilchouksey/studystack-api/services/uploadstore"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Create the target database when missing, then connect with GORM
	if err := database.EnsureDatabase(); err != nil {
		log.Println("Check whether Postgres is running and reachable")
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to initialize database tables")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// Seed default privileged accounts
	if err := database.NewSeeder(db).SeedAll(); err != nil {
		return err
	}

	// Local upload storage
	uploads, err := uploadstore.NewLocalStore(getEnv.UPLOAD_DIR)
	if err != nil {
		return err
	}

	// Background maintenance jobs (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(db, uploads)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			log.Println("Warning: Failed to start cron jobs:", err)
			cronManager = nil
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (security middleware attaches inside)
	router.SetupRoutes(app, store, getEnv, uploads)

	// Get the PORT & Start the Server
	return server.Run()
}
