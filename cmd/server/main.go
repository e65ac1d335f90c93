package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/auth"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/cache"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/checkout"
	h "github.com/itsihsaney/BaeBy-ecommerce-project/internal/http"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/payment"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/publisher"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/service"
)

type Config struct {
	HTTPPort         string
	MongoURI         string
	MongoDBName      string
	RedisAddr        string
	RedisPassword    string
	KafkaBrokers     []string
	KafkaTopic       string
	PaymentBaseURL   string
	PaymentKeyID     string
	PaymentKeySecret string
	Currency         string
	TaxRate          float64
	FeaturedCategory string
	JWTSecret        string
	TokenTTL         time.Duration
	PendingTTL       time.Duration
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

func loadConfig() *Config {
	taxRate := 0.15
	if v := os.Getenv("TAX_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid TAX_RATE %q: %v", v, err)
		}
		taxRate = parsed
	}

	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:      getEnv("MONGO_DB_NAME", "storefront"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:     strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "order-events"),
		PaymentBaseURL:   getEnv("PAYMENT_BASE_URL", "https://api.razorpay.com"),
		PaymentKeyID:     getEnv("PAYMENT_KEY_ID", ""),
		PaymentKeySecret: getEnv("PAYMENT_KEY_SECRET", ""),
		Currency:         getEnv("CURRENCY", "INR"),
		TaxRate:          taxRate,
		FeaturedCategory: getEnv("FEATURED_CATEGORY", "genz"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenTTL:         24 * time.Hour,
		PendingTTL:       30 * time.Minute,
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.PaymentKeySecret == "" {
		log.Fatal("PAYMENT_KEY_SECRET is required")
	}

	ctx := context.Background()

	// MongoDB
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed: ", err)
	}
	log.Printf("Redis ping succeeded")

	// Repositories
	productRepo := repository.NewMongoProductRepository(mongoDB)
	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	wishlistRepo := repository.NewMongoWishlistRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)
	outboxRepo := repository.NewMongoOutboxRepository(mongoDB)

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	productCache := cache.NewRedisCache(redisClient)
	catalogService := service.NewCatalogService(productRepo, productCache)
	cartService := service.NewCartService(cartRepo, catalogService)
	orderService := service.NewOrderService(orderRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, catalogService)
	authService := service.NewAuthService(userRepo, tokens)

	gateway := payment.NewHTTPGateway(cfg.PaymentBaseURL, cfg.PaymentKeyID, cfg.PaymentKeySecret)
	pendingStore := checkout.NewRedisPendingStore(redisClient, cfg.PendingTTL)
	rules := checkout.DefaultPricingRules()
	rules.TaxRate = cfg.TaxRate
	checkoutService := checkout.NewService(
		catalogService,
		cartService,
		orderRepo,
		outboxRepo,
		gateway,
		pendingStore,
		rules,
		cfg.PaymentKeySecret,
		cfg.Currency,
	)

	// Outbox poller
	pollerCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()
	poller := publisher.NewOutboxPoller(outboxRepo, cfg.KafkaTopic, cfg.KafkaBrokers...)
	go poller.Run(pollerCtx)

	// HTTP
	router := h.NewRouter(h.RouterConfig{
		Tokens:           tokens,
		Auth:             authService,
		Catalog:          catalogService,
		Cart:             cartService,
		Wishlist:         wishlistService,
		Checkout:         checkoutService,
		Orders:           orderService,
		FeaturedCategory: cfg.FeaturedCategory,
		RequestTimeout:   cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
	log.Println("server stopped")
}
