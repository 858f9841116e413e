package main

import (
	"database/sql"
	"shipment-route-service/internal/config"
	"shipment-route-service/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// dbtool creates the cache tables ahead of the first server start.
// DB_DIALECT selects postgres (DATABASE_URL) or sqlite (DB_PATH).
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	dialect := db.Dialect(strings.ToLower(config.Get("DB_DIALECT", string(db.Postgres))))

	var (
		conn *sql.DB
		err  error
	)
	switch dialect {
	case db.Postgres:
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			logrus.Fatal("DATABASE_URL is required")
		}
		conn, err = db.Open(databaseURL)
	case db.SQLite:
		conn, err = db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
	default:
		logrus.Fatalf("unknown DB_DIALECT %q", dialect)
	}
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()

	logrus.WithField("dialect", dialect).Info("Initializing database schema...")
	if err := db.InitSchema(conn, dialect); err != nil {
		logrus.Fatalf("schema initialization failed: %v", err)
	}
	logrus.Info("Schema ready.")
}
