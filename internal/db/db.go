package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/pos-booking/internal/config"
	"github.com/BruksfildServices01/pos-booking/internal/logging"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DBUrl, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// A single connection keeps in-memory databases shared and writes serialized.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

func Open(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: driver == config.DriverPostgres,
		Logger: gormlogger.New(logging.Printf{Logger: log}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB, log zerolog.Logger) error {
	if err := db.AutoMigrate(
		&models.Business{},
		&models.Staff{},
		&models.WorkingHours{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if db.Dialector.Name() == config.DriverPostgres {
		if err := ensureNoOverlapConstraint(db); err != nil {
			// The keyed lock still guards writes; the constraint is a second line.
			log.Warn().Err(err).Msg("appointments exclusion constraint not installed")
		}
	}
	return nil
}

const noOverlapConstraint = "appointments_no_overlap"

func ensureNoOverlapConstraint(db *gorm.DB) error {
	var count int64
	if err := db.Raw(
		"SELECT COUNT(*) FROM pg_constraint WHERE conname = ?", noOverlapConstraint,
	).Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	return db.Exec(`
		ALTER TABLE appointments
		ADD CONSTRAINT ` + noOverlapConstraint + `
		EXCLUDE USING gist (
			staff_id WITH =,
			date WITH =,
			int8range(start_minute, end_minute) WITH &&
		) WHERE (status <> 'cancelled')
	`).Error
}
