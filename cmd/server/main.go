package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pontopro/backend/docs"
	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/config"
	"github.com/pontopro/backend/internal/database"
	"github.com/pontopro/backend/internal/edge"
	"github.com/pontopro/backend/internal/handlers"
	"github.com/pontopro/backend/internal/metrics"
	mW "github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/services"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Ponto Pro Admin API
// @version 1.0
// @description Administrative API for the Ponto Pro time-tracking dashboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.demo_admin_fallback", "AUTH_DEMO_ADMIN_FALLBACK")
	viper.BindEnv("display.timezone", "DISPLAY_TIMEZONE")
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	viper.BindEnv("port", "PORT")

	viper.SetDefault("auth.demo_admin_fallback", false)
	viper.SetDefault("display.timezone", "America/Sao_Paulo")
	viper.SetDefault("cors.allowed_origins", []string{"https://*", "http://*"})
	viper.SetDefault("port", "8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	if viper.GetString("auth.jwt_secret") == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	cfg := config.LoadDashboardConfig()

	loc, err := time.LoadLocation(viper.GetString("display.timezone"))
	if err != nil {
		log.Printf("Unknown display timezone %q, using UTC: %v", viper.GetString("display.timezone"), err)
		loc = time.UTC
	}

	// Initialize Swagger docs
	docs.SwaggerInfo.Host = "localhost:" + viper.GetString("port")
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	metrics.Init()

	// Initialize services
	db := database.InitDatabase()
	defer db.Close()

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	edgeClient := edge.NewClient(cfg.EdgeFunctionsURL, cfg.EdgeAPIKey, cfg.EdgeTimeout)
	auditLogger := audit.NewLogger(db)

	profileService := services.NewProfileService(db, redisClient, viper.GetBool("auth.demo_admin_fallback"))
	dashboardService := services.NewDashboardService(edgeClient, redisClient, cfg.DashboardCacheTTL, cfg.DemoFallbackEnabled)
	employeeService := services.NewEmployeeService(db, edgeClient, auditLogger, cfg.BadgeSize)
	importService := services.NewImportService(employeeService, auditLogger, cfg.ImportMaxRows)
	timeRecordService := services.NewTimeRecordService(db)
	timeBankService := services.NewTimeBankService(db)
	requestService := services.NewRequestService(db, auditLogger)
	configService := services.NewConfigService(db, auditLogger)
	auditService := services.NewAuditService(db)
	reportService := services.NewReportService(timeRecordService, timeBankService, requestService,
		employeeService, auditService, auditLogger, cfg.ReportMaxRows, loc)

	sessionHandler := handlers.NewSessionHandler(profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, importService)
	timesheetHandler := handlers.NewTimesheetHandler(timeRecordService, timeBankService, loc)
	requestHandler := handlers.NewRequestHandler(requestService)
	configHandler := handlers.NewConfigHandler(configService)
	auditHandler := handlers.NewAuditHandler(auditService)
	reportHandler := handlers.NewReportHandler(reportService)

	authenticator := mW.NewAuthenticator(viper.GetString("auth.jwt_secret"), profileService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(mW.Metrics)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   viper.GetStringSlice("cors.allowed_origins"),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Demo-Data"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Handle("/metrics", metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Employee avatars
	r.Handle("/static/avatars/*", http.StripPrefix("/static/avatars/",
		mW.AvatarServer(cfg.AvatarDir)))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticator.Authenticate)
		r.Use(mW.RequireAdmin(profileService))

		r.Get("/auth/me", sessionHandler.Me)
		r.Post("/auth/logout", sessionHandler.Logout)
		r.Get("/navigation", sessionHandler.Navigation)

		r.Get("/dashboard", dashboardHandler.Get)

		r.Get("/employees", employeeHandler.List)
		r.Post("/employees", employeeHandler.Create)
		r.Post("/employees/import", employeeHandler.Import)
		r.Put("/employees/{id}/status", employeeHandler.UpdateStatus)
		r.Get("/employees/{id}/badge", employeeHandler.Badge)

		r.Get("/time-records", timesheetHandler.TimeRecords)
		r.Get("/time-bank", timesheetHandler.TimeBank)

		r.Get("/requests", requestHandler.List)
		r.Post("/requests/{id}/approve", requestHandler.Approve)
		r.Post("/requests/{id}/reject", requestHandler.Reject)

		r.Get("/config", configHandler.Get)
		r.Put("/config", configHandler.Update)

		r.Get("/audit-logs", auditHandler.List)

		r.Get("/reports", reportHandler.Catalog)
		r.Get("/reports/{report}.{format}", reportHandler.Export)
	})

	port := viper.GetString("port")

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
