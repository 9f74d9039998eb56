package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"estate-backend/internal/auth"
	"estate-backend/internal/cache"
	"estate-backend/internal/config"
	"estate-backend/internal/database"
	"estate-backend/internal/db"
	"estate-backend/internal/email"
	"estate-backend/internal/handlers"
	"estate-backend/internal/health"
	h "estate-backend/internal/http"
	"estate-backend/internal/middleware"
	"estate-backend/internal/monitoring"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"
	"estate-backend/internal/storage"
	"estate-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable, continuing without it: %v", err)
	}

	if err := os.MkdirAll(cfg.Documents.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create documents directory: %v", err)
	}

	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		log.Printf("[Storage] Object storage unavailable, continuing without it: %v", err)
	}

	// Repositories
	managerRepo := repositories.NewManagerRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	applicationRepo := repositories.NewApplicationRepository(pool)
	leaseRepo := repositories.NewLeaseRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	notificationRepo := repositories.NewNotificationRepository(pool)

	// Email provider
	var provider email.Provider
	if cfg.Email.APIKey != "" {
		provider = email.NewHTTPService(cfg.Email.APIKey, cfg.Email.Endpoint, cfg.Email.FromAddress, cfg.Email.FromName)
		log.Println("[Email] Provider configured")
	} else {
		provider = email.NewMockService()
		log.Println("[Email] No API key set, using mock provider")
	}

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	authService := services.NewAuthService(managerRepo, tenantRepo, jwtManager)
	propertyService := services.NewPropertyService(propertyRepo, uploader)
	applicationService := services.NewApplicationService(applicationRepo, propertyRepo)
	leaseService := services.NewLeaseService(leaseRepo, propertyRepo)
	paymentService := services.NewPaymentService(paymentRepo, tenantRepo)
	tenantService := services.NewTenantService(tenantRepo, propertyRepo)
	managerService := services.NewManagerService(managerRepo)
	notificationService := services.NewNotificationService(provider, notificationRepo, tenantRepo, managerRepo)
	documentService := services.NewDocumentService(cfg.Documents.Dir, paymentRepo, leaseRepo, uploader)

	applicationService.SetNotifier(notificationService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, leaseService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	leaseHandler := handlers.NewLeaseHandler(leaseService, paymentService, documentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, documentService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	managerHandler := handlers.NewManagerHandler(managerService, propertyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := h.NewRouter(
		authHandler,
		propertyHandler,
		applicationHandler,
		leaseHandler,
		paymentHandler,
		tenantHandler,
		managerHandler,
		notificationHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	go monitoring.NewServer(pool, cfg.Server.MonitoringPort, notificationService).Start()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
