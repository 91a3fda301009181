// Package gormstore is the relational Repository backend. It runs on sqlite
// in-process or on postgres, with real foreign keys, cascades and unique
// indexes.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	db  *gorm.DB
	now storage.Clock
}

var _ storage.Repository = (*Store)(nil)

type Option func(*config)

type config struct {
	clock    storage.Clock
	logLevel gormlogger.LogLevel
}

// WithClock overrides the timestamp source.
func WithClock(c storage.Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithLogLevel sets gorm's own query logging level.
func WithLogLevel(l gormlogger.LogLevel) Option {
	return func(cfg *config) { cfg.logLevel = l }
}

// Open connects to the database, tunes the pool and migrates the schema.
func Open(driver, dsn string, opts ...Option) (*Store, error) {
	cfg := config{clock: storage.SystemClock, logLevel: gormlogger.Warn}
	for _, o := range opts {
		o(&cfg)
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(cfg.logLevel),
		NowFunc:        func() time.Time { return cfg.clock() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if driver == DriverSQLite {
		// One connection keeps in-memory databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db, now: cfg.clock}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) stamp() time.Time {
	return storage.Stamp(s.now())
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", storage.ErrConstraint, err)
	}
	return err
}

func find[T any](ctx context.Context, db *gorm.DB, id string) (T, error) {
	var v T
	err := db.WithContext(ctx).Where("id = ?", id).Take(&v).Error
	return v, translate(err)
}

func insert[T any](ctx context.Context, db *gorm.DB, v *T) error {
	return translate(db.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func modify[T any](ctx context.Context, db *gorm.DB, id string, apply func(*T)) (T, error) {
	v, err := find[T](ctx, db, id)
	if err != nil {
		return v, err
	}
	apply(&v)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(&v).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return v, nil
}

func list[T any](ctx context.Context, q *gorm.DB, order string) ([]T, error) {
	out := []T{}
	if err := q.WithContext(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
