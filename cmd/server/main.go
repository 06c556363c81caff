package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/config"
	v1 "github.com/helioslabs/vitaltrack/internal/handler/v1"
	"github.com/helioslabs/vitaltrack/internal/repository"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/auth"
	"github.com/helioslabs/vitaltrack/pkg/database"
	"github.com/helioslabs/vitaltrack/pkg/logger"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
	"github.com/helioslabs/vitaltrack/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		log.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	collector := metrics.NewCollector("vitaltrack")
	if sqlDB, err := db.DB(); err == nil {
		collector.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
	}

	jwtManager := auth.NewJWTManager(cfg.JWT)

	userRepo := repository.NewUserRepository(db)
	metricRepo := repository.NewMetricRepository(db)
	medRepo := repository.NewMedicationRepository(db)
	medLogRepo := repository.NewMedicationLogRepository(db)
	mealRepo := repository.NewMealRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	auditSvc := service.NewAuditService(auditRepo, log)
	authSvc := service.NewAuthService(userRepo, jwtManager, log)
	userSvc := service.NewUserService(userRepo, log)
	metricSvc := service.NewMetricService(metricRepo, auditSvc, log)
	medSvc := service.NewMedicationService(medRepo, medLogRepo, auditSvc, log)
	mealSvc := service.NewMealService(mealRepo, auditSvc, log)
	apptSvc := service.NewAppointmentService(apptRepo, auditSvc, log)
	goalSvc := service.NewGoalService(goalRepo, auditSvc, log)
	exerciseSvc := service.NewExerciseService(exerciseRepo, auditSvc, log)
	reportSvc := service.NewReportService(userRepo, metricRepo, mealRepo, exerciseRepo, goalRepo, log)

	router := v1.NewRouter(v1.RouterDeps{
		Config:     cfg,
		Logger:     log,
		JWTManager: jwtManager,
		Collector:  collector,

		Auth:        v1.NewAuthHandler(authSvc),
		User:        v1.NewUserHandler(userSvc),
		Metric:      v1.NewMetricHandler(metricSvc, collector),
		Medication:  v1.NewMedicationHandler(medSvc, collector),
		Meal:        v1.NewMealHandler(mealSvc, collector),
		Appointment: v1.NewAppointmentHandler(apptSvc, collector),
		Goal:        v1.NewGoalHandler(goalSvc, collector),
		Exercise:    v1.NewExerciseHandler(exerciseSvc, collector),
		Report:      v1.NewReportHandler(reportSvc, collector),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	// Flush buffered audit entries before closing the DB.
	auditSvc.Shutdown()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("stopped")
}
