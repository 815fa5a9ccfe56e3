package testutil

import (
	"io"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"github.com/employee-tracker/internal/config"
	"github.com/employee-tracker/internal/database"
)

// NewDB открывает чистую базу sqlite в памяти со схемой из миграций.
// Соединение закрывается по окончании теста.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            ":memory:",
		ConnectAttempts: 1,
	}

	db, err := database.Connect(cfg, io.Discard)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close(db)
	})

	if err := database.Migrate(db, cfg.Driver, DiscardLogger()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// DiscardLogger возвращает логгер, который ничего не пишет
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
