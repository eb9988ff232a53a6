package database

import (
	"fmt"
	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"path/filepath"
	"rlk/cmd/internal/domain/entity"
	"strconv"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Init opens the database selected by DB_DRIVER/DB_DSN and migrates it.
func Init() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}

	dialector, err := Dialector(driver, os.Getenv("DB_DSN"))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		maxOpen := envInt("DB_MAX_OPEN_CONNS", 10)
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns(maxOpen)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Infof("database ready (driver: %s)", driver)
	return db, nil
}

// Dialector resolves the gorm dialector for a driver name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = filepath.Join(".", "database.db")
		}
		return sqlite.Open(dsn), nil

	case DriverMySQL:
		cfg, err := mysqldriver.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}

		// Updates must report matched rows, not changed rows, or a no-op
		// update would look like a missing row.
		cfg.ClientFoundRows = true
		cfg.ParseTime = true
		return mysql.New(mysql.Config{DSN: cfg.FormatDSN(), DSNConfig: cfg}), nil

	case DriverPostgres:
		return postgres.Open(dsn), nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Migrate creates or updates every table of the application.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Empresa{},
		&entity.Unidade{},
		&entity.Area{},
		&entity.SubArea{},
		&entity.SubArea2{},
		&entity.Classificacao{},
		&entity.DocumentoRegulatorio{},
		&entity.Usuario{},
		&entity.RequisitoBase{},
		&entity.Requisito{},
		&entity.RequisitoTag{},
		&entity.RequisitoOutraArea{},
		&entity.RequisitoCheckin{},
		&entity.RequisitoTarefa{},
		&entity.InboxNotificacao{},
	)
}

// OpenInMemory returns a migrated private SQLite database. Every call gets a
// fresh database, which is what tests rely on.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// One connection: each new connection to :memory: is a new database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Warnf("ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return val
}
