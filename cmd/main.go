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

	acceptRequestHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/accept_request"
	cancelReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/check_in"
	getAvailableSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_spots"
	getReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_reservation"
	getSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spots"
	getUserReservationsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_reservations"
	refuseRequestHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/refuse_request"
	submitRequestHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/submit_request"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	pendingRequestRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	userServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
	reservationsService "github.com/m04kA/SMC-ParkingService/internal/service/reservations"
	spotsService "github.com/m04kA/SMC-ParkingService/internal/service/spots"
	acceptRequestUC "github.com/m04kA/SMC-ParkingService/internal/usecase/accept_request"
	getAvailableSpotsUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spots"
	refuseRequestUC "github.com/m04kA/SMC-ParkingService/internal/usecase/refuse_request"
	submitRequestUC "github.com/m04kA/SMC-ParkingService/internal/usecase/submit_request"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")
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

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		pendingRepository     *pendingRequestRepo.Repository
		spotRepository        *spotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		pendingRepository = pendingRequestRepo.NewRepository(wrappedDB)
		spotRepository = spotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		pendingRepository = pendingRequestRepo.NewRepository(db)
		spotRepository = spotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		pendingRepository,
		userClient,
		log,
	)
	spotsSvc := spotsService.NewService(
		spotRepository,
		log,
	)

	// Инициализируем use cases
	submitRequestUseCase := submitRequestUC.NewUseCase(
		pendingRepository,
		userClient,
		log,
	)
	acceptRequestUseCase := acceptRequestUC.NewUseCase(
		reservationRepository,
		pendingRepository,
		spotRepository,
		userClient,
		txMgr,
		log,
	)
	refuseRequestUseCase := refuseRequestUC.NewUseCase(
		pendingRepository,
		userClient,
		log,
	)
	getAvailableSpotsUseCase := getAvailableSpotsUC.NewUseCase(
		reservationRepository,
		spotRepository,
		log,
	)

	// Инициализируем handlers
	submitRequest := submitRequestHandler.NewHandler(submitRequestUseCase, log)
	acceptRequest := acceptRequestHandler.NewHandler(acceptRequestUseCase, log)
	refuseRequest := refuseRequestHandler.NewHandler(refuseRequestUseCase, log)
	checkIn := checkInHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getAvailableSpots := getAvailableSpotsHandler.NewHandler(getAvailableSpotsUseCase, log)
	getSpots := getSpotsHandler.NewHandler(spotsSvc, log)

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

	// Инвентарь парковки
	api.HandleFunc("/spots", getSpots.Handle).Methods(http.MethodGet)

	// Места, свободные на диапазон дат
	api.HandleFunc("/available-spots", getAvailableSpots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	// Подача заявки на бронирование
	protected.HandleFunc("/requests", submitRequest.Handle).Methods(http.MethodPost)

	// Принятие заявки: выделение места и создание брони
	protected.HandleFunc("/requests/{requestId}/accept", acceptRequest.Handle).Methods(http.MethodPost)

	// Отклонение заявки (только секретарь)
	protected.HandleFunc("/requests/{requestId}/refuse", refuseRequest.Handle).Methods(http.MethodPost)

	// --- Брони ---
	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони или заявки
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Дневная отметка прибытия на месте
	protected.HandleFunc("/spots/{spotId}/check-in", checkIn.Handle).Methods(http.MethodPatch)

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
