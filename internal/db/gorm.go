package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// FindOptions narrows a FindAll query. Zero values mean "no constraint".
type FindOptions struct {
	Where   map[string]any
	Order   string
	Limit   int
	Preload []string
}

type GormDB struct {
	db *gorm.DB
}

// New wraps an already opened gorm connection.
func New(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

// NewGormDB opens a connection for the given driver ("postgres" or "sqlite").
func NewGormDB(driver, dsn string, debug bool) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(db), nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records (a pointer to a slice) only when the table is empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	count, err := f.CountWhere(ctx, slice.Index(0).Addr().Interface(), nil)
	if err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.db.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) FindAll(ctx context.Context, dest any, opts FindOptions) error {
	tx := f.db.WithContext(ctx)
	for _, assoc := range opts.Preload {
		tx = tx.Preload(assoc)
	}
	if len(opts.Where) > 0 {
		tx = tx.Where(opts.Where)
	}
	if opts.Order != "" {
		tx = tx.Order(opts.Order)
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// Create inserts record without touching its associations. Unique constraint
// violations are reported as ErrDuplicate.
func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts record unless it conflicts with an existing row and
// reports whether a row was written.
func (f *GormDB) CreateIfAbsent(ctx context.Context, record any) (bool, error) {
	tx := f.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert to table: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

// Upsert inserts record or overwrites every column of the conflicting row.
func (f *GormDB) Upsert(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}
	return nil
}

// DeleteWhere removes the rows of model matching conds and returns how many
// were deleted. Empty conds are refused.
func (f *GormDB) DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error) {
	if len(conds) == 0 {
		return 0, errors.New("delete requires at least one condition")
	}

	tx := f.db.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete from table: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) CountWhere(ctx context.Context, model any, conds map[string]any) (int64, error) {
	var count int64
	tx := f.db.WithContext(ctx).Model(model)
	if len(conds) > 0 {
		tx = tx.Where(conds)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}
