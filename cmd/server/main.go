// Command server runs the food-truck registry HTTP API.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) with environment
// overrides; see internal/config.
package main

import (
	"context"
	"log"

	"github.com/streetbite/foodtruck-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
