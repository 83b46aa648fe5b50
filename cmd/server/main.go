package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"alvezinc.backend/internal/config"
	"alvezinc.backend/internal/infrastructure/datasources"
	"alvezinc.backend/internal/infrastructure/mail"
	"alvezinc.backend/internal/infrastructure/repositories"
	"alvezinc.backend/internal/interfaces/http/handlers"
	"alvezinc.backend/internal/interfaces/http/middleware"
	"alvezinc.backend/internal/usecases"
	"alvezinc.backend/pkg/jwt"
	"alvezinc.backend/pkg/logger"
	"alvezinc.backend/pkg/redis"
	"alvezinc.backend/pkg/tasks"
)

const (
	shutdownTimeout   = 10 * time.Second
	productCacheTTL   = 5 * time.Minute
	mongoConnectLimit = 10 * time.Second
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	connectMongo = datasources.ConnectMongo
	getStdDB     = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	runServer    = func(srv *httpServer) error { return srv.Start() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Relational store: the durability boundary for identities.
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Document store: profiles and the product catalog.
	mongoCtx, cancelMongo := context.WithTimeout(context.Background(), mongoConnectLimit)
	mongoClient, err := connectMongo(mongoCtx, cfg.Mongo.URI)
	cancelMongo()
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Warn(ctx, "MongoDB disconnect failed", zap.Error(err))
		}
	}()
	mongoDB := mongoClient.Database(cfg.Mongo.DBName)
	log.Println("✅ Connected to MongoDB")

	// The product cache is best-effort: a missing Redis only costs us
	// read-through latency, never correctness.
	var productCache *redis.Cache
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, catalog caching disabled", zap.Error(err))
	} else {
		productCache = redis.NewCache(productCacheTTL)
		log.Println("✅ Connected to Redis")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	activationRepo := repositories.NewUserActivationRepository(db)
	profileRepo := repositories.NewProfileRepository(mongoDB)
	productRepo := repositories.NewProductRepository(mongoDB)
	ensureIndexes(profileRepo, productRepo)

	mailer := mail.NewSendGridDispatcher(cfg.Mail.SendGridAPIKey, cfg.Mail.FromName, cfg.Mail.FromAddress, cfg.Server.PublicBaseURL)

	// Detached work spawned after the identity insert is tracked here
	// so shutdown can drain it.
	runner := tasks.NewRunner()

	// Usecases
	accountUsecase := usecases.NewAccountUsecase(userRepo, activationRepo, profileRepo, mailer, jwtService, runner, cfg.Security.BcryptCost)
	shopUsecase := usecases.NewShopUsecase(productRepo, productCache)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	userHandler := handlers.NewUserHandler(accountUsecase)
	shopHandler := handlers.NewShopHandler(shopUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		accountHandler: accountHandler,
		userHandler:    userHandler,
		shopHandler:    shopHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	srv := newHTTPServer(r, cfg.Server.Port)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "HTTP server shutdown failed", zap.Error(err))
		}
		if err := runner.Wait(ctx); err != nil {
			logger.Warn(ctx, "Background tasks did not drain before deadline", zap.Error(err))
		}
		logger.Sync()
	}()

	log.Printf("🚀 Alvezinc Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(srv); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ensurers ...indexEnsurer) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectLimit)
	defer cancel()
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			logger.Warn(ctx, "Failed to ensure MongoDB indexes", zap.Error(err))
		}
	}
}
