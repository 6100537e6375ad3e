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

	_ "github.com/lib/pq"

	checkSlotHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/check_slot"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_bookings"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	updateBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-SalonService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/seed"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	updateBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	hours, err := cfg.BusinessHours()
	if err != nil {
		log.Fatal("Invalid business hours configuration: %v", err)
	}
	log.Info("Business hours: %s - %s, slot step %d min",
		hours.OpenTime, hours.CloseTime, hours.SlotDurationMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище: по умолчанию встроенное in-memory,
	// для продакшена PostgreSQL
	var (
		bookingRepository BookingRepository
		catalogRepository CatalogRepository
		txMgr             TxManager
	)

	switch cfg.Storage.Engine {
	case config.StorageEnginePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case config.StorageEngineMemory:
		bookingRepository = bookingRepo.NewMemoryRepository(seed.Bookings(time.Now()))
		catalogRepository = catalogRepo.NewMemoryRepository(seed.Services())
		txMgr = txmanager.NewMutexManager()
		log.Info("Using in-memory storage with seed data")

	default:
		log.Fatal("Unknown storage engine: %s", cfg.Storage.Engine)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, bookingRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, hours, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, catalogRepository, txMgr, hours, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, catalogRepository, txMgr, hours, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := newRouter(cfg, metricsCollector, routeHandlers{
		getServices:         getServices.Handle,
		getAvailableSlots:   getAvailableSlots.Handle,
		checkSlot:           checkSlot.Handle,
		createBooking:       createBooking.Handle,
		getBookings:         getBookings.Handle,
		getBooking:          getBooking.Handle,
		updateBooking:       updateBooking.Handle,
		updateBookingStatus: updateBookingStatus.Handle,
		deleteBooking:       deleteBooking.Handle,
		createService:       createService.Handle,
		updateService:       updateService.Handle,
		deleteService:       deleteService.Handle,
	})

	if cfg.Metrics.Enabled {
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

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
