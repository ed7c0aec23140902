package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

const maxRetries = 3

// SQLiteHistoryRepository implements ports.HistoryRepository using GORM
type SQLiteHistoryRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HistoryRepository = (*SQLiteHistoryRepository)(nil)

// gormLogger wraps the arlon logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
		return
	}
	logging.Logger.Debug("gorm query",
		"duration", elapsed,
		"sql", sql,
		"rows", rows,
	)
}

func newGormLogger() logger.Interface {
	if os.Getenv("ARLON_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteHistoryRepository opens (creating if needed) the history database at dbPath
func NewSQLiteHistoryRepository(dbPath string) (*SQLiteHistoryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ComparisonRunModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	logging.Logger.Debug("History database opened", "path", dbPath)
	return &SQLiteHistoryRepository{db: db}, nil
}

// Close implements HistoryRepository.Close
func (r *SQLiteHistoryRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Add implements HistoryWriter.Add
func (r *SQLiteHistoryRepository) Add(ctx context.Context, run domain.ComparisonRun) error {
	model := domainToComparisonRunModel(run)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add comparison run: %w", err)
	}
	return nil
}

// List implements HistoryReader.List
func (r *SQLiteHistoryRepository) List(ctx context.Context, limit int) ([]domain.ComparisonRun, error) {
	var models []ComparisonRunModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("ran_at DESC").Order("created_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list comparison runs: %w", err)
	}

	runs := make([]domain.ComparisonRun, 0, len(models))
	for _, m := range models {
		runs = append(runs, comparisonRunModelToDomain(m))
	}
	return runs, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
