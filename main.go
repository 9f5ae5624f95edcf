package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"measlesmon/adapters/dataset"
	"measlesmon/adapters/memory"
	"measlesmon/adapters/postgres"
	"measlesmon/app"
	"measlesmon/internal/config"
	"measlesmon/internal/errors"
	"measlesmon/ports"
	"measlesmon/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	repo, err := initRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize school repository: %v", err)
	}

	if err := loadDataset(ctx, cfg, repo); err != nil {
		log.Fatalf("Failed to load coverage dataset: %v", err)
	}

	svc := app.NewScenarioService(repo, cfg.Projector(), cfg.ScenarioDefaults())
	server := ui.NewServer(svc, cfg.Server.GinMode)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

// initRepository connects to Postgres when DATABASE_URL is set and
// falls back to the in-memory repository otherwise.
func initRepository(ctx context.Context, cfg *config.Config) (ports.SchoolRepository, error) {
	if cfg.Database.URL == "" {
		log.Println("DATABASE_URL not set, serving dataset from memory")
		return memory.NewSchoolRepository(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}
	return postgres.NewSchoolRepository(db), nil
}

// loadDataset reads the coverage data from the configured source and
// stores it in the repository. A local file wins over the remote URL.
func loadDataset(ctx context.Context, cfg *config.Config, repo ports.SchoolRepository) error {
	var reader ports.CoverageReader
	if cfg.Dataset.CoverageFile != "" {
		reader = dataset.NewFileReader(cfg.Dataset.CoverageFile)
	} else {
		reader = dataset.NewRemoteReader(cfg.Dataset.CoverageURL, cfg.Dataset.FetchTimeout)
	}

	schools, err := reader.Read(ctx)
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, schools); err != nil {
		return err
	}
	log.Printf("Loaded %d schools from coverage dataset", len(schools))
	return nil
}
