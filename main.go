package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"social-connect-platform/handlers"
	"social-connect-platform/services"
	"social-connect-platform/utils"
	"social-connect-platform/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, avatars are the largest upload
	})

	// CORS for the browser frontend.
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	storeURL := os.Getenv("COLLECTION_STORE_URL")
	if storeURL == "" {
		log.Fatal("COLLECTION_STORE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	localDBPath := os.Getenv("LOCAL_DB_PATH")
	if localDBPath == "" {
		localDBPath = "socialconnect.db"
	}
	localDB, err := utils.SetupLocalDB(localDBPath)
	if err != nil {
		log.Fatal("failed to open local storage database:", err)
	}

	storeClient := services.NewCollectionClient(storeURL)
	gateway := services.NewStoreGateway(storeClient)
	session := services.NewSessionManager(services.NewLocalStorage(localDB))
	engine := services.NewSpinEngine(gateway, session)

	refreshSeconds := 300
	if v := os.Getenv("CATALOG_REFRESH_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			refreshSeconds = parsed
		}
	}
	catalogCache := services.NewCatalogCache(time.Duration(refreshSeconds) * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogWorker := workers.NewCatalogRefreshWorker(gateway, catalogCache, time.Duration(refreshSeconds)*time.Second)
	go catalogWorker.Start(ctx)

	handlers.SetupAuthRoutes(app, gateway, session)
	handlers.SetupFeedRoutes(app, gateway, catalogCache, session)
	handlers.SetupProfileRoutes(app, gateway, session)
	handlers.SetupSpinRoutes(app, engine, session)
	handlers.SetupContactRoutes(app, gateway)

	// Locally stored avatars are served from here.
	app.Static("/uploads", "./uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5200"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ Collection store: %s", storeURL)
	log.Printf("✅ Catalog refresh running (every %ds)", refreshSeconds)
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	catalogWorker.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️ server shutdown: %v", err)
	}
	if err := localDB.Close(); err != nil {
		log.Printf("⚠️ local storage close: %v", err)
	}
}
