package database

import (
	"embed"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/employee-tracker/internal/config"
	"github.com/employee-tracker/internal/domain"
)

//go:embed migrations
var embedMigrations embed.FS

// Connect открывает единственное соединение с БД.
// Журнал gorm пишется в logOutput, чтобы не смешиваться с меню в терминале.
func Connect(cfg config.DatabaseConfig, logOutput io.Writer) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.New(
			log.New(logOutput, "", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}

	attempts := max(cfg.ConnectAttempts, 1)

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(time.Second)
		}

		var db *gorm.DB
		db, err = gorm.Open(dialector(cfg), gormConfig)
		if err != nil {
			continue
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			err = dbErr
			continue
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)

		if err = sqlDB.Ping(); err == nil {
			return db, nil
		}
		sqlDB.Close()
	}

	return nil, fmt.Errorf("%w after %d attempt(s): %w", domain.ErrConnection, attempts, err)
}

// Close закрывает соединение, полученное от Connect
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate применяет встроенные миграции для драйвера из настроек
func Migrate(db *gorm.DB, driver string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dialect, dir := "postgres", "migrations/postgres"
	if driver == config.DriverSQLite {
		dialect, dir = "sqlite3", "migrations/sqlite"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{logger: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// gooseLogger направляет вывод goose в slog
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info("migration", slog.String("message", fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error("migration failed", slog.String("message", fmt.Sprintf(format, v...)))
}
