package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"placehub/internal/api/services"
	"placehub/internal/config"
	"placehub/internal/redis"
	"placehub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	areasFlag := flag.String("areas", "", "Comma separated area names (defaults to the built-in campus areas)")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	db, err := repository.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	rdb := redis.New(cfg)
	defer rdb.Close()
	areaCache := redis.AreasCache(rdb)
	if err := redis.Ping(ctx, rdb); err != nil {
		log.Printf("redis unavailable, areas cache will not be invalidated: %v", err)
		areaCache = redis.AreasCache(nil)
	}

	areaRepo := repository.NewAreaRepository(db.DB())
	resolver := services.NewAreaResolver(areaRepo, areaCache, nil)
	seeder := services.NewSeedCoordinator(areaRepo, resolver)

	log.Println("Starting seed process...")

	result, err := seeder.Seed(ctx, parseNames(*areasFlag))
	if err != nil {
		log.Fatalf("Failed to seed areas: %v", err)
	}

	for _, area := range result.Created {
		log.Printf("Created area %s (%s)", area.Name, area.Slug)
	}
	log.Printf("Seed complete: %d created, %d areas total", len(result.Created), len(result.Areas))
}

// parseNames splits the -areas flag. An empty flag selects the default names.
func parseNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	names := []string{}
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
