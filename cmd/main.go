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

	approveBookingHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/approve_booking"
	checkAdminHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/check_admin"
	createBookingHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/create_booking"
	createCommentHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/create_comment"
	deleteBookingHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/delete_booking"
	exportScheduleHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/export_schedule"
	getBookingsHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/get_calendar"
	rejectBookingHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/reject_booking"
	updateBookingHandler "github.com/avlasov/venue-booking-service/internal/api/handlers/update_booking"
	"github.com/avlasov/venue-booking-service/internal/api/middleware"
	"github.com/avlasov/venue-booking-service/internal/config"
	"github.com/avlasov/venue-booking-service/internal/domain"
	adminRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/admin"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
	commentRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/comment"
	"github.com/avlasov/venue-booking-service/internal/integrations/telegram"
	bookingsService "github.com/avlasov/venue-booking-service/internal/service/bookings"
	approveBookingUC "github.com/avlasov/venue-booking-service/internal/usecase/approve_booking"
	createBookingUC "github.com/avlasov/venue-booking-service/internal/usecase/create_booking"
	exportScheduleUC "github.com/avlasov/venue-booking-service/internal/usecase/export_schedule"
	getCalendarUC "github.com/avlasov/venue-booking-service/internal/usecase/get_calendar"
	updateBookingUC "github.com/avlasov/venue-booking-service/internal/usecase/update_booking"
	"github.com/avlasov/venue-booking-service/pkg/dbmetrics"
	"github.com/avlasov/venue-booking-service/pkg/logger"
	"github.com/avlasov/venue-booking-service/pkg/metrics"
	"github.com/avlasov/venue-booking-service/pkg/simpletxmanager"
	"github.com/avlasov/venue-booking-service/pkg/txmanager"
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

	log.Info("Starting VenueBookingService...")
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

	// Инициализируем отправку уведомлений в Telegram
	type NotifierClient interface {
		BookingCreated(ctx context.Context, b *domain.Booking, adminIDs []int64) error
		BookingApproved(ctx context.Context, b *domain.Booking) error
		BookingRejected(ctx context.Context, b *domain.Booking) error
		SendDocument(ctx context.Context, userID int64, filename string, data []byte, caption string) error
	}
	var notifier NotifierClient

	if cfg.Telegram.Enabled {
		tgNotifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.NotificationsChatID, log)
		if err != nil {
			log.Fatal("Failed to initialize telegram notifier: %v", err)
		}
		notifier = tgNotifier
		log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.NotificationsChatID)
	} else {
		notifier = telegram.NoopNotifier{}
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		adminRepository   *adminRepo.Repository
		commentRepository *commentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		commentRepository = commentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		commentRepository = commentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Правила вместимости площадки
	capacityRules := domain.NewCapacityRules(cfg.Booking.MaxCapacity, cfg.Booking.PlacesWithCapacityCheck)
	log.Info("Capacity rules: max=%d, checked places=%v",
		cfg.Booking.MaxCapacity, cfg.Booking.PlacesWithCapacityCheck)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		commentRepository,
		adminRepository,
		notifier,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		adminRepository,
		notifier,
		txMgr,
		capacityRules,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		adminRepository,
		txMgr,
		capacityRules,
		log,
	)
	approveBookingUseCase := approveBookingUC.NewUseCase(
		bookingRepository,
		adminRepository,
		notifier,
		txMgr,
		capacityRules,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		cfg.Booking.CalendarWindowDays,
		log,
	)
	exportScheduleUseCase := exportScheduleUC.NewUseCase(
		bookingRepository,
		notifier,
		cfg.Booking.ExportWindowDays,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	createComment := createCommentHandler.NewHandler(bookingSvc, log)
	checkAdmin := checkAdminHandler.NewHandler(bookingSvc, log)
	exportSchedule := exportScheduleHandler.NewHandler(exportScheduleUseCase, log)

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

	// Календарь занятости площадки
	api.HandleFunc("/bookings/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание заявки на бронирование
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список заявок (свои для пользователя, все для администратора)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Редактирование заявки
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление заявки
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Решения администратора по заявке
	protected.HandleFunc("/bookings/{id}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	// Комментарии к заявке
	protected.HandleFunc("/bookings/{id}/comments", createComment.Handle).Methods(http.MethodPost)

	// --- Пользователи ---
	protected.HandleFunc("/users/check-admin", checkAdmin.Handle).Methods(http.MethodGet)

	// --- Экспорт расписания ---
	protected.HandleFunc("/export/excel", exportSchedule.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped")
}
