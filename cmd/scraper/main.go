package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/projekt-r/restorang/app/cfg"
	"github.com/projekt-r/restorang/app/database"
	"github.com/projekt-r/restorang/app/geo"
	"github.com/projekt-r/restorang/app/scraper"
	"github.com/projekt-r/restorang/app/wolt"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env file for local development
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting Restorang scraper %s...", appCfg.Version)

	city, err := scraper.LoadCityConfig(appCfg.CityConfig)
	if err != nil {
		log.Fatal("Failed to load city configuration: ", err)
	}
	log.Printf("Scraping city: %s", city.Name)

	log.Println("Connecting to database...")
	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName, appCfg.DBSSLMode)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()
	log.Println("Connected to database successfully")

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	log.Printf("Database schema at version %d (dirty: %v)", version, dirty)

	client := wolt.NewClient(wolt.Options{
		UserAgent:      appCfg.UserAgent,
		AcceptLanguage: city.AcceptLanguage,
		Language:       city.Language,
		Country:        city.Country,
	})

	resolver := geo.NewResolver(client, city.CityID, appCfg.GeocodeDelay)

	runner := scraper.NewRunner(client, resolver,
		database.NewRestaurantRepository(db),
		database.NewCategoryRepository(db),
		database.NewItemRepository(db),
		database.NewPriceRepository(db),
		city, appCfg.VenueDelay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v, stopping...", sig)
		cancel()
	}()

	if appCfg.ScrapeInterval <= 0 {
		if err := runner.Run(ctx); err != nil {
			log.Fatal("Scrape failed: ", err)
		}
		log.Println("Scrape complete")
		return
	}

	interval := time.Duration(appCfg.ScrapeInterval) * time.Second
	log.Printf("Running every %s, press Ctrl+C to stop", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := runner.Run(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("Scraper stopped")
				return
			}
			slog.Error("Scrape run failed", "error", err)
		} else {
			log.Println("Scrape complete")
		}

		select {
		case <-ctx.Done():
			log.Println("Scraper stopped")
			return
		case <-ticker.C:
		}
	}
}
