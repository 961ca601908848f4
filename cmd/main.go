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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/create_reservation"
	createStateHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/create_state"
	deactivateStateHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/deactivate_state"
	deleteReservationHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/delete_reservation"
	deleteStateHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/delete_state"
	findAvailabilityHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/find_availability"
	getInvoiceEligibilityHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/get_invoice_eligibility"
	getReservationHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/list_reservations"
	listStatesHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/list_states"
	listTransitionsHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/list_transitions"
	transitionReservationHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/transition_reservation"
	transitionVehicleHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/transition_vehicle"
	updateReservationHandler "github.com/Carbyfah/magic-sub006/internal/api/handlers/update_reservation"
	"github.com/Carbyfah/magic-sub006/internal/api/middleware"
	"github.com/Carbyfah/magic-sub006/internal/config"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	routeRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/routerun"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	tourRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/tourrun"
	vehicleRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/vehicle"
	capacityService "github.com/Carbyfah/magic-sub006/internal/service/capacity"
	reservationsService "github.com/Carbyfah/magic-sub006/internal/service/reservations"
	statesService "github.com/Carbyfah/magic-sub006/internal/service/states"
	createReservationUC "github.com/Carbyfah/magic-sub006/internal/usecase/create_reservation"
	findAvailabilityUC "github.com/Carbyfah/magic-sub006/internal/usecase/find_availability"
	transitionReservationUC "github.com/Carbyfah/magic-sub006/internal/usecase/transition_reservation"
	transitionVehicleUC "github.com/Carbyfah/magic-sub006/internal/usecase/transition_vehicle"
	updateReservationUC "github.com/Carbyfah/magic-sub006/internal/usecase/update_reservation"
	"github.com/Carbyfah/magic-sub006/pkg/dbmetrics"
	"github.com/Carbyfah/magic-sub006/pkg/logger"
	"github.com/Carbyfah/magic-sub006/pkg/metrics"
	"github.com/Carbyfah/magic-sub006/pkg/simpletxmanager"
	"github.com/Carbyfah/magic-sub006/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env, если файл присутствует
	_ = godotenv.Load()

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

	log.Info("Starting TravelBookingCore...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		stateRepository       *stateRepo.Repository
		routeRunRepository    *routeRunRepo.Repository
		tourRunRepository     *tourRunRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		stateRepository = stateRepo.NewRepository(wrappedDB)
		routeRunRepository = routeRunRepo.NewRepository(wrappedDB)
		tourRunRepository = tourRunRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		stateRepository = stateRepo.NewRepository(db)
		routeRunRepository = routeRunRepo.NewRepository(db)
		tourRunRepository = tourRunRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	stateSvc := statesService.NewService(stateRepository, log)
	capacitySvc := capacityService.NewService(
		routeRunRepository,
		tourRunRepository,
		reservationRepository,
		log,
	)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		routeRunRepository,
		tourRunRepository,
		stateRepository,
		capacitySvc,
		txMgr,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		routeRunRepository,
		tourRunRepository,
		capacitySvc,
		txMgr,
		log,
	)

	transitionReservationUseCase := transitionReservationUC.NewUseCase(
		reservationRepository,
		stateRepository,
		txMgr,
		log,
	)

	transitionVehicleUseCase := transitionVehicleUC.NewUseCase(
		vehicleRepository,
		stateRepository,
		txMgr,
		log,
	)

	findAvailabilityUseCase := findAvailabilityUC.NewUseCase(
		routeRunRepository,
		tourRunRepository,
		capacitySvc,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	transitionReservation := transitionReservationHandler.NewHandler(transitionReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getInvoiceEligibility := getInvoiceEligibilityHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	findAvailability := findAvailabilityHandler.NewHandler(findAvailabilityUseCase, log)
	listStates := listStatesHandler.NewHandler(stateSvc, log)
	createState := createStateHandler.NewHandler(stateSvc, log)
	deleteState := deleteStateHandler.NewHandler(stateSvc, log)
	deactivateState := deactivateStateHandler.NewHandler(stateSvc, log)
	listTransitions := listTransitionsHandler.NewHandler(stateSvc, log)
	transitionVehicle := transitionVehicleHandler.NewHandler(transitionVehicleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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

	// Поиск доступного рейса на дату
	api.HandleFunc("/availability", findAvailability.Handle).Methods(http.MethodGet)

	// Каталог состояний
	api.HandleFunc("/contexts/{context}/states", listStates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contexts/{context}/transitions", listTransitions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/status", transitionReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/invoiceable", getInvoiceEligibility.Handle).Methods(http.MethodGet)

	// --- Транспорт ---
	protected.HandleFunc("/vehicles/{vehicleId}/status", transitionVehicle.Handle).Methods(http.MethodPatch)

	// --- Управление каталогом состояний ---
	protected.HandleFunc("/contexts/{context}/states", createState.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/states/{stateId}", deleteState.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/states/{stateId}/deactivate", deactivateState.Handle).Methods(http.MethodPatch)

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
