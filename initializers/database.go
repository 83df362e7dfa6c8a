package initializers

import (
	"database/sql"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
)

// ConnectDB opens the Postgres pool and wraps it in a goqu handle. The raw
// *sql.DB is returned alongside so the caller owns the close on shutdown.
func ConnectDB() (*goqu.Database, *sql.DB) {
	dsn := os.Getenv("DB_URL")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	return goqu.New("postgres", db), db
}
