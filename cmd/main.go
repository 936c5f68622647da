package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/canchaleconte/cancha-api/internal/handlers"
	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/middlewares"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/notifications"
	"github.com/canchaleconte/cancha-api/internal/ratelimit"
	"github.com/canchaleconte/cancha-api/internal/repositories"
	"github.com/canchaleconte/cancha-api/internal/services"
	"github.com/canchaleconte/cancha-api/internal/sessiontoken"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Cancha Leconte API
// @version 1.0.0
// @description Backend for organizing soccer games: admin auth, game management, and friend self-registration
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		baseURL, corsOrigins, sessionSecret, webhookVerifyToken,
		secureCookies,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		baseURL, corsOrigins, sessionSecret, webhookVerifyToken,
		secureCookies,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, and security configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	baseURL, corsOrigins, sessionSecret, webhookVerifyToken string,
	secureCookies bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "cancha")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, empty topic disables notification publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_NOTIFICATIONS_TOPIC", "")

	// Security config
	baseURL = getEnv("APP_BASE_URL", "http://localhost:8080")
	corsOrigins = getEnv("APP_CORS_ORIGINS", "http://localhost:3000")
	sessionSecret = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	webhookVerifyToken = getEnv("WHATSAPP_VERIFY_TOKEN", "verify_token")
	secureCookies = getEnv("APP_SECURE_COOKIES", "false") == "true"

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	baseURL, corsOrigins, sessionSecret, webhookVerifyToken string,
	secureCookies bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for notification events, optional
	var kafkaWriter notifications.KafkaWriter
	if kafkaTopic != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}
	publisher := notifications.NewPublisher(kafkaWriter)

	// Initialize token codec
	codec := sessiontoken.New(sessionSecret)

	// Initialize repositories
	userReadRepo := repositories.NewAdminUserReadRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	attemptReadRepo := repositories.NewLoginAttemptReadRepository(db)
	attemptWriteRepo := repositories.NewLoginAttemptWriteRepository(db)
	gameReadRepo := repositories.NewGameReadRepository(db)
	gameWriteRepo := repositories.NewGameWriteRepository(db)
	registrationReadRepo := repositories.NewRegistrationReadRepository(db)
	registrationWriteRepo := repositories.NewRegistrationWriteRepository(db)

	// Initialize services
	sessionService := services.NewSessionService(userReadRepo, sessionReadRepo, sessionWriteRepo, codec)
	authService := services.NewAuthService(userReadRepo, sessionService)
	registrationService := services.NewRegistrationService(gameReadRepo, registrationReadRepo, registrationWriteRepo, publisher, baseURL)
	gameService := services.NewGameService(gameReadRepo, gameWriteRepo, registrationReadRepo)

	// Initialize rate limiters
	loginLimiter := ratelimit.NewLoginLimiter(attemptReadRepo, attemptWriteRepo)
	counterLimiter := ratelimit.NewCounterLimiter(rdb)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService, loginLimiter, secureCookies)
	logoutHandler := handlers.NewLogoutHandler(authService, sessionService, secureCookies)
	sessionHandler := handlers.NewSessionHandler(sessionService, secureCookies)
	registerFriendHandler := handlers.NewRegisterFriendHandler(registrationService)
	myRegistrationHandler := handlers.NewMyRegistrationHandler(registrationService)
	cancelByTokenHandler := handlers.NewCancelByTokenHandler(registrationService)
	cancelByPhoneHandler := handlers.NewCancelRegistrationHandler(registrationService)
	createGameHandler := handlers.NewCreateGameHandler(gameService, baseURL)
	listGamesHandler := handlers.NewListGamesHandler(gameService)
	listRegistrationsHandler := handlers.NewListGameRegistrationsHandler(gameService)
	webhookVerifyHandler := handlers.NewWebhookVerifyHandler(webhookVerifyToken)
	webhookHandler := handlers.NewWebhookHandler(publisher)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", sessiontoken.CSRFHeaderName},
		AllowCredentials: true,
	}))

	authMiddleware := middlewares.AuthMiddleware(sessionService, secureCookies, "")
	adminOnly := middlewares.AuthMiddleware(sessionService, secureCookies, models.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		// Auth surface
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", loginHandler)
			r.Get("/validate", sessionHandler)
			r.Post("/validate", sessionHandler)
			// Logout resolves its own cookie so the GET variant can
			// redirect to the login page regardless of outcome.
			r.Post("/logout", logoutHandler)
			r.Get("/logout", logoutHandler)
		})

		// Public registration surface, CSRF-checked and rate limited
		r.Group(func(r chi.Router) {
			r.Use(middlewares.CSRFMiddleware())
			r.With(middlewares.RateLimitMiddleware(counterLimiter, ratelimit.ActionRegister)).
				Post("/games/{shareToken}/register", registerFriendHandler)
			r.With(middlewares.RateLimitMiddleware(counterLimiter, ratelimit.ActionCancel)).
				Delete("/games/{shareToken}/register", cancelByPhoneHandler)
			r.Get("/mi-registro/{token}", myRegistrationHandler)
			r.With(middlewares.RateLimitMiddleware(counterLimiter, ratelimit.ActionCancel)).
				Post("/mi-registro/{token}/cancel", cancelByTokenHandler)
		})

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.CSRFMiddleware())
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/games", createGameHandler)
			})
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/games", listGamesHandler)
				r.Get("/games/{gameID}/registrations", listRegistrationsHandler)
			})
		})

		// WhatsApp webhook
		r.With(middlewares.RateLimitMiddleware(counterLimiter, ratelimit.ActionWebhook)).
			Get("/notifications/whatsapp/webhook", webhookVerifyHandler)
		r.With(middlewares.RateLimitMiddleware(counterLimiter, ratelimit.ActionWebhook)).
			Post("/notifications/whatsapp/webhook", webhookHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Retention cleanup for login attempts and expired sessions
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				if n := loginLimiter.CleanupOldAttempts(ctx); n > 0 {
					logger.Log.Infow("pruned old login attempts", "count", n)
				}
				if n, err := sessionWriteRepo.DeleteExpired(ctx); err != nil {
					logger.Log.Errorw("failed to prune expired sessions", "error", err)
				} else if n > 0 {
					logger.Log.Infow("pruned expired sessions", "count", n)
				}
			}
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
