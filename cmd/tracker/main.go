package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/employee-tracker/internal/config"
	"github.com/employee-tracker/internal/database"
	"github.com/employee-tracker/internal/logging"
	"github.com/employee-tracker/internal/menu"
	"github.com/employee-tracker/internal/prompt"
	"github.com/employee-tracker/internal/repository"
	"github.com/employee-tracker/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Employee tracker - manage departments, roles and employees",
		Long: `Employee tracker is an interactive menu for viewing and editing
departments, roles and employees stored in a SQL database.

Connection settings are read from the environment (or a .env file):
DB_DRIVER, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE, DB_PATH.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Загрузка конфигурации
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Инициализация логгера
	logWriter := logging.NewWriter(cfg.Log)
	defer logWriter.Close()

	logger := logging.New(logWriter, cfg.Log.Level)
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Connect(cfg.Database, logWriter)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
		logger.Info("database connection closed")
	}()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		return err
	}

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	services := menu.Services{
		Departments: service.NewDepartmentService(deptRepo, roleRepo),
		Roles:       service.NewRoleService(roleRepo, deptRepo, empRepo),
		Employees:   service.NewEmployeeService(empRepo, roleRepo),
	}

	logger.Info("session started", slog.String("driver", cfg.Database.Driver))

	m := menu.New(services, prompt.NewSurvey(), cmd.OutOrStdout(), logger)
	if err := m.Run(ctx); err != nil {
		logger.Error("session aborted", slog.Any("error", err))
		return err
	}

	logger.Info("session finished")
	return nil
}
