package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"surplus-claims-platform/config"
	"surplus-claims-platform/handlers"
	"surplus-claims-platform/services"
	"surplus-claims-platform/store"
	"surplus-claims-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimit,
	})

	app.Use(requestid.New())

	// Trim spaces so "a.com, b.com" from the environment still matches.
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID",
	}))

	// Store selection: Postgres shares state across processes; the memory
	// store is seeded per process and only valid for a single instance.
	var st store.Store
	if cfg.DatabaseURL != "" {
		gormStore, err := store.OpenGorm(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to open database-backed store: ", err)
		}
		st = gormStore
		log.Println("✅ Using Postgres-backed record store")
	} else {
		st = store.NewMemoryStore(store.DefaultDataset())
		log.Println("⚠️  DATABASE_URL not set — using seeded in-memory store (single instance only)")
	}

	uploads, err := buildStorage(cfg)
	if err != nil {
		log.Fatal("failed to initialize attachment storage: ", err)
	}

	clock := clockwork.NewRealClock()
	adminService := services.NewAdminService(st, clock)
	investorService := services.NewInvestorService(st, clock, uploads)

	adminService.StartFundingScheduler()

	handlers.SetupAdminRoutes(app, adminService)
	handlers.SetupInvestorRoutes(app, investorService)

	app.Static("/uploads", cfg.UploadDir)

	// Must come last: the investor bundle mounts at "/" and swallows
	// everything the API routes did not claim.
	handlers.SetupStaticRoutes(app, cfg.StaticDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ CORS configured for origins: %s", cfg.AllowedOrigins)
	log.Println("✅ Funding close-out scheduler running (every 1m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}

func buildStorage(cfg config.Config) (*utils.Storage, error) {
	if cfg.StorageEndpoint != "" && cfg.StorageBucket != "" {
		return utils.NewObjectStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.CDNBaseURL,
		)
	}
	return utils.NewLocalStorage(cfg.UploadDir)
}
