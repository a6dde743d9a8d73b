package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api"
	computeQuoteHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/compute_quote"
	createBookingHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/get_booking"
	getLocationsHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/get_locations"
	getProductsHandler "github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers/get_products"
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/middleware"
	"github.com/m04kA/SMC-ConfiguratorService/internal/config"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	catalogCache "github.com/m04kA/SMC-ConfiguratorService/internal/infra/cache/catalog"
	bookingRepo "github.com/m04kA/SMC-ConfiguratorService/internal/infra/storage/booking"
	productRepo "github.com/m04kA/SMC-ConfiguratorService/internal/infra/storage/product"
	tursoClient "github.com/m04kA/SMC-ConfiguratorService/internal/integrations/turso"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-ConfiguratorService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ConfiguratorService/internal/service/catalog"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/locations"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/pricing"
	computeQuoteUC "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/compute_quote"
	createBookingUC "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConfiguratorService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/idgen"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/metrics"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ConfiguratorService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ids := idgen.New()
	directory := locations.NewDirectory(domain.DefaultLocations())

	engine := pricing.NewEngine(pricing.Config{
		LaborRate:          cfg.Pricing.LaborRate,
		TaxRate:            cfg.Pricing.TaxRate,
		RushRate:           cfg.Pricing.RushRate,
		HoursPerWorkDay:    cfg.Pricing.HoursPerWorkDay,
		RushBufferDays:     cfg.Pricing.RushBufferDays,
		StandardBufferDays: cfg.Pricing.StandardBufferDays,
		ValidityDays:       cfg.Pricing.ValidityDays,
		Currency:           cfg.Pricing.Currency,
	}, ids)

	// Подключаемся к базе данных (опционально)
	var wrappedDB *dbmetrics.DB
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	} else {
		log.Warn("Database disabled: bookings are not persisted, availability uses the hash oracle only")
	}

	// Хранилище бронирований и транзакции. Переменные интерфейсного типа остаются nil без БД.
	var (
		bookings     *bookingRepo.Repository
		bookingStore createBookingUC.BookingRepository
		txMgr        createBookingUC.TransactionManager
	)
	if wrappedDB != nil {
		bookings = bookingRepo.NewRepository(wrappedDB)
		bookingStore = bookings
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Выбираем источник занятых слотов
	var oracle availability.Oracle
	switch cfg.Booking.Oracle {
	case config.OracleStore:
		oracle = availability.NewStoreOracle(bookings)
	case config.OracleHybrid:
		oracle = availability.NewUnionOracle(availability.NewHashOracle(), availability.NewStoreOracle(bookings))
	default:
		oracle = availability.NewHashOracle()
	}
	resolver := availability.NewResolver(oracle)
	log.Info("Availability oracle: %s", cfg.Booking.Oracle)

	// Каталог товаров (опционально)
	var catalog *catalogService.Service
	if cfg.Catalog.Enabled {
		var source catalogService.ProductSource
		switch cfg.Catalog.Source {
		case config.CatalogSourceTurso:
			source = tursoClient.NewClient(
				cfg.Turso.URL,
				cfg.Turso.AuthToken,
				time.Duration(cfg.Turso.Timeout)*time.Second,
				log,
			)
		default:
			source = productRepo.NewRepository(wrappedDB)
		}

		var cache catalogService.Cache
		if cfg.Redis.Enabled && cfg.Catalog.CacheTTL > 0 {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer redisClient.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis unavailable at %s, catalog cache disabled: %v", cfg.Redis.Addr, err)
			} else {
				cache = catalogCache.NewRedisCache(redisClient, cfg.Catalog.CacheTTLDuration())
				log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Catalog.CacheTTL)
			}
			cancel()
		}

		catalog = catalogService.NewService(
			source,
			cache,
			catalogService.Pricing{LaborRate: engine.LaborRate(), Currency: engine.Currency()},
			metricsCollector,
			log,
		)
		log.Info("Catalog enabled (source=%s)", source.Name())
	}

	// Инициализируем use cases
	computeQuoteUseCase := computeQuoteUC.NewUseCase(engine, metricsCollector, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(resolver, directory, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		directory,
		resolver,
		bookingStore,
		txMgr,
		ids,
		metricsCollector,
		createBookingUC.Settings{
			InitialStatus:      domain.BookingStatus(cfg.Booking.InitialStatus),
			ConfirmationPrefix: cfg.Booking.ConfirmationPrefix,
		},
		log,
	)

	// Инициализируем handlers
	routes := api.Handlers{
		GetLocations:      getLocationsHandler.NewHandler(directory, log),
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CreateBooking:     createBookingHandler.NewHandler(createBookingUseCase, log),
		ComputeQuote:      computeQuoteHandler.NewHandler(computeQuoteUseCase, log),
	}
	if bookings != nil {
		bookingSvc := bookingsService.NewService(bookings, directory, log)
		routes.GetBooking = getBookingHandler.NewHandler(bookingSvc, log)
	}
	if catalog != nil {
		routes.GetProducts = getProductsHandler.NewHandler(catalog, log)
	}

	opts := api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.VisitorTTL)*time.Second,
			log,
		)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(routes, opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
