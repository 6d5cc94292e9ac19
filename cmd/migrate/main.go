package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/meteroid-oss/meteroid/internal/config"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/migrations"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	dsn := cfg.Postgres.GetDSN()
	lg.Infow("Connecting to database", "host", cfg.Postgres.Host)

	if *dryRun {
		names, err := migrations.Files()
		if err != nil {
			lg.Fatalw("Failed to list migrations", "error", err)
		}
		for _, name := range names {
			content, err := migrations.ReadFile(name)
			if err != nil {
				lg.Fatalw("Failed to read migration", "file", name, "error", err)
			}
			fmt.Printf("-- %s\n%s\n", name, content)
		}
		return
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		lg.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	lg.Info("Running database migrations...")
	if err := migrations.Run(db); err != nil {
		lg.Fatalw("Failed to apply migrations", "error", err)
	}
	lg.Info("Migration completed successfully")
}
