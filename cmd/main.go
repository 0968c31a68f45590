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

	cancelBookingHandler "github.com/unique-reservas/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/unique-reservas/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/unique-reservas/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/unique-reservas/booking-service/internal/api/handlers/get_booking"
	getBookingByNumberHandler "github.com/unique-reservas/booking-service/internal/api/handlers/get_booking_by_number"
	getCancelBookingHandler "github.com/unique-reservas/booking-service/internal/api/handlers/get_cancel_booking"
	getDayBookingsHandler "github.com/unique-reservas/booking-service/internal/api/handlers/get_day_bookings"
	"github.com/unique-reservas/booking-service/internal/api/middleware"
	"github.com/unique-reservas/booking-service/internal/config"
	bookingRepo "github.com/unique-reservas/booking-service/internal/infra/storage/booking"
	"github.com/unique-reservas/booking-service/internal/integrations/googlecalendar"
	"github.com/unique-reservas/booking-service/internal/integrations/resendmail"
	"github.com/unique-reservas/booking-service/internal/notify"
	bookingsService "github.com/unique-reservas/booking-service/internal/service/bookings"
	createBookingUC "github.com/unique-reservas/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/unique-reservas/booking-service/internal/usecase/get_available_slots"
	"github.com/unique-reservas/booking-service/pkg/dbmetrics"
	"github.com/unique-reservas/booking-service/pkg/logger"
	"github.com/unique-reservas/booking-service/pkg/metrics"
	"github.com/unique-reservas/booking-service/pkg/simpletxmanager"
	"github.com/unique-reservas/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Часовой пояс площадки, в нем считаются окна отмены и события календаря
	location, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Calendar.TimeZone, err)
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем интеграции уведомлений
	var mailer notify.Mailer
	if cfg.Email.Enabled {
		mailer = resendmail.NewClient(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, log)
		log.Info("Email integration enabled (from=%s)", cfg.Email.FromEmail)
	} else {
		log.Warn("Email integration disabled, no booking emails will be sent")
	}

	var calendarClient notify.Calendar
	if cfg.Calendar.Enabled {
		client, err := googlecalendar.NewClient(
			context.Background(),
			cfg.Calendar.CredentialsFile,
			cfg.Calendar.CalendarID,
			cfg.Calendar.TimeZone,
			cfg.Calendar.Location,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		calendarClient = client
		log.Info("Google Calendar integration enabled (calendar=%s)", cfg.Calendar.CalendarID)
	} else {
		log.Warn("Google Calendar integration disabled, no events will be created")
	}

	// Запускаем фоновый диспетчер уведомлений
	dispatcher := notify.New(
		notify.Config{
			QueueSize:  cfg.Notifications.QueueSize,
			MaxRetries: cfg.Notifications.MaxRetries,
			RetryDelay: time.Duration(cfg.Notifications.RetryDelay) * time.Second,
			OwnerEmail: cfg.Email.OwnerEmail,
			BaseURL:    cfg.Email.BaseURL,
		},
		mailer,
		calendarClient,
		bookingRepository,
		log,
	)
	dispatcher.Start()
	log.Info("Notification dispatcher started (queue=%d, retries=%d)",
		cfg.Notifications.QueueSize, cfg.Notifications.MaxRetries)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		dispatcher,
		location,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		dispatcher,
		createBookingUC.Pricing{
			CourtPricePerSlot: cfg.Pricing.CourtPricePerSlot,
			EventFlatPrice:    cfg.Pricing.EventFlatPrice,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByNumber := getBookingByNumberHandler.NewHandler(bookingSvc, log)
	getCancelBooking := getCancelBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования и список бронирований на дату
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по публичному номеру
	api.HandleFunc("/bookings/number/{bookingNumber}", getBookingByNumber.Handle).Methods(http.MethodGet)

	// Просмотр и подтверждение отмены по токену
	api.HandleFunc("/bookings/cancel/{token}", getCancelBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/cancel/{token}", cancelBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по внутреннему ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	// Дожидаемся доставки уже поставленных в очередь уведомлений
	dispatcher.Stop()
	log.Info("Notification dispatcher stopped")

	log.Info("Server stopped gracefully")
}
