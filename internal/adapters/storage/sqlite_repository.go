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
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

// SQLiteRepository implements ports.RecordStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RecordStore = (*SQLiteRepository)(nil)

// gormLogger wraps the studyflow logger for GORM
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
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("STUDYFLOW_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the record store at dbPath.
// Every failure wraps domain.ErrStoreUnavailable so callers can degrade to
// memory-only mode.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	repo, err := openSQLiteRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return repo, nil
}

func openSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&SessionModel{}, &ReflectionModel{}); err != nil {
		closeGorm(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository inside a STUDYFLOW_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "studyflow.db"))
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveSession implements SessionWriter.SaveSession.
// Upserts by id; created_at of an existing row is preserved.
func (r *SQLiteRepository) SaveSession(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	return storageErr("save session", withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "subject", "started_at", "ended_at", "synced"}),
		}).Create(&model).Error
	}, 3))
}

// GetSession implements SessionReader.GetSession
func (r *SQLiteRepository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	var model SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, storageErr("get session", err)
	}

	session := sessionModelToDomain(model)
	return &session, nil
}

// FetchSessions implements SessionReader.FetchSessions (newest created first)
func (r *SQLiteRepository) FetchSessions(ctx context.Context) ([]domain.Session, error) {
	return r.findSessions(ctx, "fetch sessions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC, id ASC")
	})
}

// FetchUnsyncedSessions implements SessionReader.FetchUnsyncedSessions.
// Oldest started first, so retries keep chronological upload order.
func (r *SQLiteRepository) FetchUnsyncedSessions(ctx context.Context) ([]domain.Session, error) {
	return r.findSessions(ctx, "fetch unsynced sessions", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("synced = ?", false).Order("started_at ASC, id ASC")
	})
}

// FetchSessionsSince implements SessionReader.FetchSessionsSince (inclusive, newest started first)
func (r *SQLiteRepository) FetchSessionsSince(ctx context.Context, since time.Time) ([]domain.Session, error) {
	return r.findSessions(ctx, "fetch sessions since", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("started_at >= ?", since.UTC()).Order("started_at DESC, id ASC")
	})
}

func (r *SQLiteRepository) findSessions(ctx context.Context, op string, scope func(tx *gorm.DB) *gorm.DB) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		return scope(r.db.WithContext(ctx)).Find(&models).Error
	}, 3)
	if err != nil {
		return nil, storageErr(op, err)
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// MarkSessionSynced implements SessionWriter.MarkSessionSynced.
// An unknown id is not an error.
func (r *SQLiteRepository) MarkSessionSynced(ctx context.Context, id string) error {
	return storageErr("mark session synced", withRetry(func() error {
		return r.db.WithContext(ctx).Model(&SessionModel{}).
			Where("id = ?", id).
			Update("synced", true).Error
	}, 3))
}

// SaveReflection implements ReflectionWriter.SaveReflection (upsert by id)
func (r *SQLiteRepository) SaveReflection(ctx context.Context, reflection domain.Reflection) error {
	if err := reflection.Validate(); err != nil {
		return err
	}

	model := domainToReflectionModel(reflection)
	return storageErr("save reflection", withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"session_id", "user_id", "task_text", "completion", "difficulty", "efficiency_score",
			}),
		}).Create(&model).Error
	}, 3))
}

// FetchReflections implements ReflectionReader.FetchReflections (newest created first)
func (r *SQLiteRepository) FetchReflections(ctx context.Context, sessionID string) ([]domain.Reflection, error) {
	return r.findReflections(ctx, "fetch reflections", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("session_id = ?", sessionID).Order("created_at DESC, id ASC")
	})
}

// FetchAllReflections implements ReflectionReader.FetchAllReflections (newest created first)
func (r *SQLiteRepository) FetchAllReflections(ctx context.Context) ([]domain.Reflection, error) {
	return r.findReflections(ctx, "fetch all reflections", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC, id ASC")
	})
}

func (r *SQLiteRepository) findReflections(ctx context.Context, op string, scope func(tx *gorm.DB) *gorm.DB) ([]domain.Reflection, error) {
	var models []ReflectionModel
	err := withRetry(func() error {
		return scope(r.db.WithContext(ctx)).Find(&models).Error
	}, 3)
	if err != nil {
		return nil, storageErr(op, err)
	}

	result := make([]domain.Reflection, len(models))
	for i, m := range models {
		result[i] = reflectionModelToDomain(m)
	}
	return result, nil
}

// storageErr tags a failed durable operation with domain.ErrStorage
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
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
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
