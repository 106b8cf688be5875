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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/akomarov/bookshelf/internal/handlers"
	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/migrations"
	"github.com/akomarov/bookshelf/internal/oauth"
	"github.com/akomarov/bookshelf/internal/repositories"
	"github.com/akomarov/bookshelf/internal/services"
	"github.com/akomarov/bookshelf/internal/sessions"
	"github.com/akomarov/bookshelf/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bookshelf API
// @version 1.0.0
// @description Multi-tenant library catalog: federated login, ownership-scoped book records and PDF uploads
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionTTLSecond,
		kafkaBroker, kafkaTopic,
		storagePath,
		googleClientID, googleClientSecret, googleRedirectURL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionTTLSecond,
		kafkaBroker, kafkaTopic,
		storagePath,
		googleClientID, googleClientSecret, googleRedirectURL,
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
// application, database, Redis, Kafka, storage and OAuth configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionTTLSecond int,
	kafkaBroker, kafkaTopic string,
	storagePath string,
	googleClientID, googleClientSecret, googleRedirectURL string,
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
	pgDB = getEnv("POSTGRES_DB", "bookshelf")
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
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "bookshelf-events")

	// File storage config
	storagePath = getEnv("STORAGE_PATH", "./uploads")

	// Google OAuth config
	googleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	googleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	googleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", fmt.Sprintf("http://%s:%s/auth/google/callback", appHost, appPort))

	return
}

// run initializes the logger, database, Redis, Kafka, file storage and the
// OAuth provider, sets up routes with middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionTTLSecond int,
	kafkaBroker, kafkaTopic string,
	storagePath string,
	googleClientID, googleClientSecret, googleRedirectURL string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

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

	// Apply schema migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Fatal("schema migration failed:", err)
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

	// Kafka writer for catalog change events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// File storage for uploaded PDFs
	fileStore, err := storage.NewFileStore(storagePath)
	if err != nil {
		logger.Log.Fatal("file storage init failed:", err)
	}

	// Google identity provider
	provider, err := oauth.New(ctx, oauth.Config{
		ClientID:     googleClientID,
		ClientSecret: googleClientSecret,
		RedirectURL:  googleRedirectURL,
	})
	if err != nil {
		logger.Log.Fatal("identity provider init failed:", err)
	}

	// Initialize session store
	sessionStore := sessions.New(rdb, time.Duration(sessionTTLSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db)
	pdfReadRepo := repositories.NewBookPdfReadRepository(db)
	pdfWriteRepo := repositories.NewBookPdfWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userWriteRepo, sessionStore)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, kafkaWriter)
	pdfService := services.NewBookPdfService(pdfReadRepo, pdfWriteRepo, bookReadRepo, fileStore, kafkaWriter)

	// Initialize handlers
	googleLoginHandler := handlers.NewGoogleLoginHandler(provider)
	googleCallbackHandler := handlers.NewGoogleCallbackHandler(provider, authService)
	logoutHandler := handlers.NewLogoutHandler(authService)

	bookListHandler := handlers.NewBookListHandler(bookService)
	bookGetHandler := handlers.NewBookGetHandler(bookService)
	bookCreateHandler := handlers.NewBookCreateHandler(bookService)
	bookUpdateHandler := handlers.NewBookUpdateHandler(bookService)
	bookDeleteHandler := handlers.NewBookDeleteHandler(bookService)

	userListHandler := handlers.NewUserListHandler(userService)
	userGetHandler := handlers.NewUserGetHandler(userService)
	userCreateHandler := handlers.NewUserCreateHandler(userService)
	userUpdateHandler := handlers.NewUserUpdateHandler(userService)

	pdfListHandler := handlers.NewPdfListHandler(pdfService)
	pdfGetHandler := handlers.NewPdfGetHandler(pdfService)
	pdfUploadHandler := handlers.NewPdfUploadHandler(pdfService)
	pdfDownloadHandler := handlers.NewPdfDownloadHandler(pdfService)
	pdfUpdateHandler := handlers.NewPdfUpdateHandler(pdfService)
	pdfDeleteHandler := handlers.NewPdfDeleteHandler(pdfService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionMiddleware(sessionStore, userReadRepo))

	// Public routes
	r.Get("/auth/google/login", googleLoginHandler)
	r.Get("/auth/google/callback", googleCallbackHandler)
	r.Get("/books", bookListHandler)
	r.Get("/books/{id}", bookGetHandler)
	r.Get("/book-pdfs", pdfListHandler)
	r.Get("/book-pdfs/{id}", pdfGetHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)

		r.Post("/logout", logoutHandler)

		r.Post("/books", bookCreateHandler)
		r.Put("/books/{id}", bookUpdateHandler)
		r.Delete("/books/{id}", bookDeleteHandler)

		r.Get("/users", userListHandler)
		r.Get("/users/{id}", userGetHandler)
		r.Post("/users", userCreateHandler)
		r.Put("/users/{id}", userUpdateHandler)

		r.Post("/book-pdfs", pdfUploadHandler)
		r.Get("/book-pdfs/{id}/download", pdfDownloadHandler)
		r.Put("/book-pdfs/{id}", pdfUpdateHandler)
		r.Delete("/book-pdfs/{id}", pdfDeleteHandler)
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
