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

	cancelBookingHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/cancel_booking"
	checkTouchupHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/check_touchup"
	createBookingHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/get_catalog"
	getDateBookingsHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/get_date_bookings"
	getSettingsHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/get_settings"
	manageCatalogItemHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/manage_catalog_item"
	reportPaymentHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/report_payment"
	searchBookingsHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/search_bookings"
	updateBookingStatusHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/AM-Studio-19/am-booking/internal/api/handlers/update_settings"
	"github.com/AM-Studio-19/am-booking/internal/api/middleware"
	"github.com/AM-Studio-19/am-booking/internal/config"
	"github.com/AM-Studio-19/am-booking/internal/infra/migrations"
	bookingRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/booking"
	catalogRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/catalog"
	discountRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/discount"
	settingsRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/settings"
	templateRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/template"
	"github.com/AM-Studio-19/am-booking/internal/integrations/linenotify"
	bookingsService "github.com/AM-Studio-19/am-booking/internal/service/bookings"
	catalogService "github.com/AM-Studio-19/am-booking/internal/service/catalog"
	settingsService "github.com/AM-Studio-19/am-booking/internal/service/settings"
	checkTouchupUC "github.com/AM-Studio-19/am-booking/internal/usecase/check_touchup"
	createBookingUC "github.com/AM-Studio-19/am-booking/internal/usecase/create_booking"
	"github.com/AM-Studio-19/am-booking/pkg/dbmetrics"
	"github.com/AM-Studio-19/am-booking/pkg/logger"
	"github.com/AM-Studio-19/am-booking/pkg/metrics"
	"github.com/AM-Studio-19/am-booking/pkg/simpletxmanager"
	"github.com/AM-Studio-19/am-booking/pkg/txmanager"
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

	log.Info("Starting AM-Booking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции
	if err := migrations.Up(cfg.Database.URL()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

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

	// Инициализируем клиент LINE (если включён)
	var lineClient createBookingUC.LineClient
	if cfg.Line.Enabled {
		lineClient = linenotify.NewClient(
			cfg.Line.APIURL,
			cfg.Line.ChannelToken,
			time.Duration(cfg.Line.Timeout)*time.Second,
			log,
		)
		log.Info("LINE client initialized (url=%s timeout=%ds)", cfg.Line.APIURL, cfg.Line.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		catalogRepository  *catalogRepo.Repository
		discountRepository *discountRepo.Repository
		templateRepository *templateRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		discountRepository,
		templateRepository,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		cfg.Studio.DomainLocations(),
		log,
	)

	// Инициализируем use cases
	checkTouchupUseCase := checkTouchupUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		cfg.Studio.Categories,
		cfg.Studio.TouchupWindowTable(),
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		discountRepository,
		settingsRepository,
		lineClient,
		txMgr,
		cfg.Studio.DomainLocations(),
		cfg.Studio.DepositPerGuest,
		log,
	)

	// Инициализируем handlers
	checkTouchup := checkTouchupHandler.NewHandler(checkTouchupUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	reportPayment := reportPaymentHandler.NewHandler(bookingSvc, log)
	searchBookings := searchBookingsHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	manageCatalogItem := manageCatalogItemHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Каталог услуг, скидок и шаблонов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Настройки локации (открытые даты и слоты)
	api.HandleFunc("/locations/{locationId}/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Auth)

	// Проверка цены коррекции по истории визитов
	session.HandleFunc("/touchup/check", checkTouchup.Handle).Methods(http.MethodGet)

	// Создание группового бронирования
	session.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение группы бронирований по коду
	session.HandleFunc("/bookings/code/{code}", getBooking.HandleByCode).Methods(http.MethodGet)

	// Сообщение о переводе депозита
	session.HandleFunc("/bookings/code/{code}/payment", reportPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Pin header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Studio.AdminPIN))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", searchBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/search", searchBookings.HandleSearch).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.HandleByID).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/locations/{locationId}/bookings", getDateBookings.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	admin.HandleFunc("/catalog/{collection}", manageCatalogItem.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/{collection}/{id}", manageCatalogItem.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/{collection}/{id}", manageCatalogItem.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки локаций ---
	admin.HandleFunc("/locations/{locationId}/settings", updateSettings.Handle).Methods(http.MethodPut)

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
