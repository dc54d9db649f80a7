package main

import (
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"leadgate/config"
	"leadgate/controllers"
	"leadgate/middleware"
	"leadgate/notifier"
	"leadgate/routes"
	"leadgate/store"
	"leadgate/utils"
)

// newLeadStore picks the durable store when a database is configured and
// reachable. An unavailable database is a valid state: the service stays
// up on the in-memory fallback, which does not survive restarts and does
// not deduplicate.
func newLeadStore() store.LeadStore {
	if !config.DurableConfigured() {
		log.Println("No database configured, leads will be held in memory only")
		return store.NewMemoryLeadStore()
	}
	if err := config.ConnectDB(); err != nil {
		log.Printf("Database unavailable, falling back to in-memory store: %v", err)
		return store.NewMemoryLeadStore()
	}
	return store.NewGormLeadStore(config.DB)
}

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Optional Sentry for unexpected faults; the service stays up either way
	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			log.Printf("Sentry initialization failed: %v", err)
		}
	}

	leadStore := newLeadStore()

	mailer := utils.NewLeadMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.FromEmail,
		config.AppConfig.NotifyEmail,
	)
	leadNotifier := notifier.New(mailer, logrus.WithField("component", "notifier"))

	leadController := controller.NewLeadController(leadStore, leadNotifier, logrus.WithField("component", "leads"))
	leadController.CountryPrefix = config.AppConfig.CountryPrefix
	leadController.DisposableDomains = config.AppConfig.ExtraDisposableDomains
	leadController.BrochurePath = config.AppConfig.BrochurePath

	// Create Fiber app; recover keeps isolated handler faults from taking
	// the process down
	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: config.AppConfig.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:         3600,
	}))

	// Setup routes
	routes.SetupRoutes(app, leadController)

	// Start server
	log.Printf("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
