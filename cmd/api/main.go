// Command api serves a minimal JSON-only surface for the outbreak
// simulator: no rendered pages, just the scenario endpoints. Useful for
// embedding the model behind another front end.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"measlesmon/adapters/dataset"
	"measlesmon/adapters/memory"
	"measlesmon/app"
	"measlesmon/internal/config"
	"measlesmon/internal/errors"
	"measlesmon/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	repo := memory.NewSchoolRepository()
	if err := loadDataset(ctx, cfg, repo); err != nil {
		log.Fatalf("Failed to load coverage dataset: %v", err)
	}

	svc := app.NewScenarioService(repo, cfg.Projector(), cfg.ScenarioDefaults())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/schools", func(w http.ResponseWriter, r *http.Request) {
		schools, err := svc.ListSchools(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"schools": schools, "count": len(schools)})
	})

	r.Get("/api/scenario", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("school")
		if name == "" {
			writeError(w, errors.InvalidInput("school query parameter is required"))
			return
		}
		run, err := svc.RunForSchool(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, run)
	})

	r.Get("/api/scenario/custom", func(w http.ResponseWriter, r *http.Request) {
		enrollment, err := strconv.Atoi(queryOrDefault(r, "enrollment", "500"))
		if err != nil {
			writeError(w, errors.InvalidInput("enrollment must be an integer"))
			return
		}
		rate, err := strconv.ParseFloat(queryOrDefault(r, "rate", "0.85"), 64)
		if err != nil {
			writeError(w, errors.InvalidInput("rate must be a number"))
			return
		}
		run, err := svc.RunCustom(r.Context(), enrollment, rate)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, run)
	})

	addr := ":" + cfg.Server.Port
	log.Printf("API server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

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
	return repo.ReplaceAll(ctx, schools)
}

func queryOrDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeDatasetError:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": errors.GetCode(err)})
}
