package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pitabwire/util"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Entry is a single localized catalog row, unique per entity id, language
// and namespace kind.
type Entry struct {
	ID         string `gorm:"type:varchar(50);primary_key"`
	EntryID    int    `gorm:"index:idx_catalog_entry,unique"`
	LanguageID int    `gorm:"index:idx_catalog_entry,unique"`
	Kind       Kind   `gorm:"type:varchar(10);index:idx_catalog_entry,unique"`
	Content    string

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// BeforeSave gives new rows an id and updates the modification stamp.
func (e *Entry) BeforeSave(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = util.IDString()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.ModifiedAt = now

	return nil
}

// Datastore resolves catalog entries from a postgres database via gorm.
type Datastore struct {
	db *gorm.DB
}

// NewDatastore connects to databaseURL through a pgx pool and wraps the
// connection with gorm.
func NewDatastore(ctx context.Context, databaseURL string) (*Datastore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	cfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn: stdlib.OpenDBFromPool(pool),
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	return &Datastore{db: gormDB}, nil
}

// OpenDatastore wraps an existing gorm connection, mostly for tests.
func OpenDatastore(db *gorm.DB) *Datastore {
	return &Datastore{db: db}
}

// Close releases the underlying database pool.
func (d *Datastore) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the catalog table.
func (d *Datastore) Migrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(&Entry{})
}

// Save upserts a catalog entry.
func (d *Datastore) Save(ctx context.Context, entry *Entry) error {
	return d.db.WithContext(ctx).Save(entry).Error
}

// Text implements Store.
func (d *Datastore) Text(ctx context.Context, id int, languageID int) (string, error) {
	return d.lookup(ctx, KindText, id, languageID)
}

// Word implements Store.
func (d *Datastore) Word(ctx context.Context, id int, languageID int) (string, error) {
	return d.lookup(ctx, KindWord, id, languageID)
}

func (d *Datastore) lookup(ctx context.Context, kind Kind, id int, languageID int) (string, error) {
	var entry Entry
	err := d.db.WithContext(ctx).
		Where("entry_id = ? AND language_id = ? AND kind = ?", id, languageID, kind).
		First(&entry).Error
	if err != nil {
		if errorIsNoRows(err) {
			return "", fmt.Errorf("%s %d language %d: %w", kind, id, languageID, ErrNotFound)
		}
		return "", err
	}

	return entry.Content, nil
}

// errorIsNoRows validates if the supplied error is a missing record.
func errorIsNoRows(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows)
}
