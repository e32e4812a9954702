// Command seeder loads the San Francisco food-truck dataset into the
// database. It is intended to be run once against a fresh schema, not as
// part of the main server.
//
// Flags:
//
//	--data  path to the dataset JSON file (default: data/foodtrucks.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/streetbite/foodtruck-backend/internal/adapter/postgres"
	truckrepo "github.com/streetbite/foodtruck-backend/internal/adapter/postgres/truck"
	"github.com/streetbite/foodtruck-backend/internal/app"
	"github.com/streetbite/foodtruck-backend/internal/config"
	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// record mirrors one entry of the dataset file.
type record struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DaysHours string  `json:"days_hours"`
	FoodItems string  `json:"food_items"`
}

func main() {
	dataFlag := flag.String("data", "data/foodtrucks.json", "path to the dataset JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	raw, err := os.ReadFile(*dataFlag)
	if err != nil {
		logger.Error("read dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Error("parse dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := truckrepo.New(pool)

	var inserted, skipped int
	for _, rec := range records {
		t := &domain.Truck{
			ID:        rec.ID,
			Name:      rec.Name,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			DaysHours: rec.DaysHours,
			FoodItems: rec.FoodItems,
		}

		if _, err := repo.CreateWithID(ctx, t); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			logger.Error("insert truck",
				slog.Int64("truck_id", rec.ID),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		inserted++
	}

	// Explicit ids bypass the serial sequence, so advance it past the
	// dataset to keep future inserts from colliding.
	_, err = pool.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('food_trucks', 'id'), (SELECT COALESCE(MAX(id), 1) FROM food_trucks))`)
	if err != nil {
		logger.Error("advance id sequence", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("inserted", inserted),
		slog.Int("skipped", skipped),
	)
}
