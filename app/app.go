package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"adire-boutique/app/controller"
	"adire-boutique/app/router"
	"adire-boutique/db"
	"adire-boutique/pricing"
	"adire-boutique/repository"
	"adire-boutique/service"
	"adire-boutique/store"
	"adire-boutique/wizard"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis-backed KV store for carts and wishlists
	kv, err := newKVStore()
	if err != nil {
		return err
	}

	// Pricing engine for aso-ebi group quotes
	pricingConfigPath := os.Getenv("PRICING_CONFIG_PATH")
	if pricingConfigPath == "" {
		pricingConfigPath = "config/pricing.json"
	}
	engine, err := pricing.NewEngine(pricingConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load pricing config: %w", err)
	}

	// Wizard flow definitions
	flowsDir := os.Getenv("FLOWS_DIR")
	if flowsDir == "" {
		flowsDir = "config/flows"
	}
	flows, err := wizard.LoadFlows(flowsDir)
	if err != nil {
		return fmt.Errorf("failed to load flow definitions: %w", err)
	}
	log.Printf("✅ Loaded %d wizard flows from %s", len(flows), flowsDir)

	// Image cache for the optimized image endpoint
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	// Google Drive client for product imagery
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}
	driveService, err := service.NewDriveService(credentialsPath)
	if err != nil {
		return err
	}

	// Repositories
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	bookingRepo := repository.NewBookingRepository()
	bespokeRepo := repository.NewBespokeOrderRepository()
	asoEbiRepo := repository.NewAsoEbiRepository()
	quizRepo := repository.NewQuizRepository()
	financeRepo := repository.NewFinanceTransactionRepository()

	// WhatsApp relay to the boutique owner (optional; skipped when unset)
	notifyService := newNotifyService()

	// Services
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	syncService := service.NewSyncService(driveService, productRepo)
	downloadService := service.NewDownloadService(driveService, productRepo)
	lookbookService := service.NewLookbookService(productRepo, baseURL)
	recommendationService := service.NewRecommendationService(productRepo, quizRepo)

	// Submitters persist finished wizard runs, keyed by flow id
	submitters := map[string]wizard.Submitter{
		"booking":        &service.BookingSubmitter{Repo: bookingRepo, Notify: notifyService},
		"bespoke":        &service.BespokeSubmitter{Repo: bespokeRepo, Notify: notifyService},
		"asoebi":         &service.AsoEbiSubmitter{Repo: asoEbiRepo, Notify: notifyService},
		"style-quiz":     &service.QuizSubmitter{Repo: quizRepo, Flow: "style-quiz"},
		"outfit-builder": &service.QuizSubmitter{Repo: quizRepo, Flow: "outfit-builder"},
	}

	// Create controllers
	controllers := &router.Controllers{
		Product:  controller.NewProductController(productRepo),
		Cart:     controller.NewCartController(kv, productRepo, orderRepo, notifyService),
		Wishlist: controller.NewWishlistController(kv, productRepo),
		Flow:     controller.NewFlowController(flows, submitters),
		Booking:  controller.NewBookingController(bookingRepo),
		Order:    controller.NewOrderController(orderRepo, financeRepo),
		Bespoke:  controller.NewBespokeController(bespokeRepo),
		AsoEbi:   controller.NewAsoEbiController(asoEbiRepo),
		Quiz:     controller.NewQuizController(recommendationService, quizRepo),
		Finance:  controller.NewFinanceTransactionController(financeRepo),
		Lookbook: controller.NewLookbookController(lookbookService),
		Image:    controller.NewImageController(downloadService, syncService),
		Pricing:  controller.NewPricingController(engine),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}

// newKVStore connects to Redis when REDIS_ADDR is set, otherwise falls back
// to the in-process store (useful for local development without Redis)
func newKVStore() (store.KVStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("⚠️  REDIS_ADDR not set, carts and wishlists will not survive a restart")
		return store.NewMemoryKV(), nil
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		redisDB = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, err := store.NewRedisKV(ctx, store.RedisConfig{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           redisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		TTL:          30 * 24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("✅ Connected to Redis at %s", addr)
	return kv, nil
}

// newNotifyService builds the WhatsApp relay when credentials are configured
func newNotifyService() *service.NotifyService {
	token := os.Getenv("WHATSAPP_ACCESS_TOKEN")
	phoneNumberID := os.Getenv("WHATSAPP_PHONE_NUMBER_ID")
	ownerPhone := os.Getenv("OWNER_WHATSAPP_NUMBER")
	if token == "" || phoneNumberID == "" || ownerPhone == "" {
		log.Printf("⚠️  WhatsApp relay not configured, owner notifications disabled")
		return nil
	}

	endpoint := os.Getenv("WHATSAPP_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://graph.facebook.com/v18.0"
	}

	client := service.NewWhatsAppClient(service.WhatsAppConfig{
		APIEndpoint:   endpoint,
		PhoneNumberID: phoneNumberID,
		AccessToken:   token,
		Timeout:       10 * time.Second,
		MaxRetries:    3,
		RetryDelay:    2 * time.Second,
	})

	log.Printf("✅ WhatsApp relay configured for %s", ownerPhone)
	return service.NewNotifyService(client, ownerPhone)
}
