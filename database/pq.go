package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
	"github.com/sahilchouksey/studystack-api/config"
)

// Storage defines the interface the rest of the app uses to reach the database
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore
}

// EnsureDatabase connects to the maintenance database with database/sql and
// creates the configured database when it does not exist yet. GORM itself
// cannot do this because its DSN already names the target database.
func EnsureDatabase() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	connectStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_PORT,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", getEnv.DB_NAME).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	// CREATE DATABASE takes no bind parameters; the name comes from trusted
	// config, quote identifiers anyway.
	quoted := `"` + strings.ReplaceAll(getEnv.DB_NAME, `"`, `""`) + `"`
	if _, err := db.Exec("CREATE DATABASE " + quoted); err != nil {
		return err
	}

	log.Printf("Created database %s", getEnv.DB_NAME)
	return nil
}
