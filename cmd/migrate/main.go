package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"

	"prolinked-backend/config"
	"prolinked-backend/internal/repository/postgres"
	"prolinked-backend/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// migrate runs goose commands (up, down, status, redo, version) against
// DATABASE_URL using the embedded migrations.
func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Log.Error("Unsupported dialect", slog.Any("error", err))
		os.Exit(1)
	}

	var args []string
	if flag.NArg() > 1 {
		args = flag.Args()[1:]
	}
	if err := goose.RunContext(context.Background(), command, db, postgres.MigrationsDir, args...); err != nil {
		logger.Log.Error("Migration command failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Log.Info("Migration command finished", slog.String("command", command))
}
