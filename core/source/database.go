package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fragment-loader/core/database"

	"gorm.io/gorm"
)

// Fragment is a row of the fragments table.
type Fragment struct {
	Ref       string `gorm:"column:ref;primaryKey;size:255"`
	Markup    string `gorm:"column:markup;type:text"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by Fragment.
func (Fragment) TableName() string {
	return "fragments"
}

// DatabaseSource reads fragments from the fragments table.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a database-backed source.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Fetch implements Source.
func (s *DatabaseSource) Fetch(ctx context.Context, ref string) (string, error) {
	var f Fragment
	err := s.db.WithContext(ctx).Where("ref = ?", ref).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query fragment %s: %w", ref, err)
	}
	return f.Markup, nil
}

// Put creates or replaces a fragment.
func (s *DatabaseSource) Put(ctx context.Context, ref, markup string) error {
	f := Fragment{Ref: ref, Markup: markup}
	if err := s.db.WithContext(ctx).Save(&f).Error; err != nil {
		return fmt.Errorf("failed to store fragment %s: %w", ref, err)
	}
	return nil
}

// Migrate creates the fragments table if needed and verifies its columns.
func (s *DatabaseSource) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Fragment{}); err != nil {
		return fmt.Errorf("failed to migrate fragments table: %w", err)
	}

	missing, err := database.MissingColumns(s.db, Fragment{}.TableName(), "ref", "markup")
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("fragments table is missing columns %v", missing)
	}
	return nil
}
