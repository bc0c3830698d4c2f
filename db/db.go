package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres applies pending migrations. It opens its own database/sql
// connection because goose does not speak pgx pools; the connection is
// closed as soon as the migrations ran.
func SetupPostgres(dsn string, logger *zap.Logger) error {
	database, err := sql.Open("postgres", dsn)

	if err != nil {
		return fmt.Errorf("can not open migration connection: %w", err)
	}

	defer database.Close()

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	if err = goose.Up(database, "migrations"); err != nil {
		return fmt.Errorf("can not apply migrations: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}
