package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/helioslabs/vitaltrack/internal/config"
	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/domain/appointment"
	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
	"github.com/helioslabs/vitaltrack/internal/domain/goal"
	"github.com/helioslabs/vitaltrack/internal/domain/meal"
	"github.com/helioslabs/vitaltrack/internal/domain/medication"
	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: false,
		DisableAutomaticPing:                     false,
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: false,
	}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	start := time.Now()

	models := []any{
		&domain.User{},
		&domain.AuditLog{},
		&metric.HealthMetric{},
		&medication.Medication{},
		&medication.Log{},
		&meal.Meal{},
		&appointment.Appointment{},
		&goal.Goal{},
		&exercise.Log{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	log.Info("migrations completed", zap.Duration("duration", time.Since(start)))
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// Dashboard reads are always (user, type, window); partial index
		// keeps soft-deleted rows out of the scan.
		{
			name:  "idx_metrics_live_window",
			query: `CREATE INDEX IF NOT EXISTS idx_metrics_live_window ON health_metrics (user_id, type, date) WHERE deleted_at IS NULL`,
		},
		{
			name:  "idx_appointments_upcoming",
			query: `CREATE INDEX IF NOT EXISTS idx_appointments_upcoming ON appointments (user_id, date) WHERE deleted_at IS NULL AND status IN ('scheduled', 'confirmed')`,
		},
		{
			name:  "idx_medication_logs_window",
			query: `CREATE INDEX IF NOT EXISTS idx_medication_logs_window ON medication_logs (user_id, scheduled_time) WHERE deleted_at IS NULL`,
		},
		{
			name:  "idx_goals_open",
			query: `CREATE INDEX IF NOT EXISTS idx_goals_open ON goals (user_id, category) WHERE deleted_at IS NULL AND completed = false`,
		},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			return fmt.Errorf("creating index %s: %w", idx.name, err)
		}
	}

	return nil
}
