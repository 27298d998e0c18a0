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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/cancel_booking"
	checkConsecutiveHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/check_consecutive"
	createBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_booking"
	getBookingByReferenceHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_booking_by_reference"
	getGroundBookingsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_ground_bookings"
	getUserBookingsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/config"
	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	groundRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/ground"
	slotRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	notifyClient "github.com/m04kA/TurfBookingService/internal/integrations/notifyservice"
	bookingsService "github.com/m04kA/TurfBookingService/internal/service/bookings"
	cancelBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/cancel_booking"
	checkConsecutiveUC "github.com/m04kA/TurfBookingService/internal/usecase/check_consecutive"
	createBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/TurfBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/TurfBookingService/pkg/cache"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/logger"
	"github.com/m04kA/TurfBookingService/pkg/metrics"
	"github.com/m04kA/TurfBookingService/pkg/simpletxmanager"
	"github.com/m04kA/TurfBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting TurfBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Подключаемся к Redis (если кэширование включено)
	var slotCache *cache.Cache
	if cfg.Redis.Enabled {
		slotCache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// Кэш не критичен для работы сервиса
			log.Warn("Failed to connect to Redis, continuing without cache: %v", err)
			slotCache = nil
		} else {
			defer slotCache.Close()
			log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.SlotsTTL)
		}
	}

	// Инициализируем клиент сервиса уведомлений
	notify := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		groundRepository  *groundRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		groundRepository = groundRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		groundRepository = groundRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Ценовая политика генерации слотов
	policy := domain.PricingPolicy{
		OpenHour:  cfg.Pricing.OpenHour,
		CloseHour: cfg.Pricing.CloseHour,
	}
	for _, band := range cfg.Pricing.Bands {
		policy.Bands = append(policy.Bands, domain.PriceBand{
			FromHour: band.FromHour,
			ToHour:   band.ToHour,
			Delta:    band.Delta,
		})
	}
	if err := policy.Validate(); err != nil {
		log.Fatal("Invalid pricing policy: %v", err)
	}
	log.Info("Slot generation horizon [%d, %d), %d price bands",
		policy.OpenHour, policy.CloseHour, len(policy.Bands))

	// Инициализируем сервис чтения бронирований
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		groundRepository,
		log,
	)

	// Инициализируем use cases
	// nil-интерфейсы кэша, когда Redis выключен
	var slotCacheIface getAvailableSlotsUC.SlotCache
	var createInvalidator createBookingUC.CacheInvalidator
	var cancelInvalidator cancelBookingUC.CacheInvalidator
	if slotCache != nil {
		slotCacheIface = slotCache
		createInvalidator = slotCache
		cancelInvalidator = slotCache
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		groundRepository,
		txMgr,
		slotCacheIface,
		policy,
		cfg.Pricing.FallbackBasePrice,
		time.Duration(cfg.Redis.SlotsTTL)*time.Second,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		groundRepository,
		txMgr,
		notify,
		createInvalidator,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		notify,
		cancelInvalidator,
		log,
	)

	checkConsecutiveUseCase := checkConsecutiveUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	checkConsecutive := checkConsecutiveHandler.NewHandler(checkConsecutiveUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByReference := getBookingByReferenceHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getGroundBookings := getGroundBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты площадки на дату
	api.HandleFunc("/grounds/{groundId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка непрерывности выбранных слотов
	api.HandleFunc("/grounds/{groundId}/slots/check-consecutive",
		checkConsecutive.Handle).Methods(http.MethodPost)

	// ============================================================
	// GUEST ROUTES (X-User-ID опционален)
	// ============================================================

	guest := api.PathPrefix("").Subrouter()
	guest.Use(middleware.OptionalAuth)

	// Создание бронирования (гостевое без заголовка)
	guest.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования (гостевые отменяются без заголовка)
	guest.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Чтение бронирования по коду (гостевые читаются без заголовка)
	guest.HandleFunc("/bookings/by-reference/{reference}", getBookingByReference.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Список бронирований площадки
	protected.HandleFunc("/grounds/{groundId}/bookings", getGroundBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
