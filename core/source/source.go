package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fragment-loader/core/storage"

	"gorm.io/gorm"
)

// Source retrieves fragment markup by reference.
type Source interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// ErrNotFound reports that no fragment exists for a reference.
var ErrNotFound = errors.New("fragment not found")

// StatusError is returned when a fragment server answers with a non-success status.
type StatusError struct {
	Ref  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load component: %s (%d)", e.Ref, e.Code)
}

// Is makes a 404 match ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Deps carries the clients a backend may need. Only the one matching
// the configured driver has to be set.
type Deps struct {
	Storage storage.Client
	Bucket  string
	DB      *gorm.DB
}

// New builds the Source selected by cfg.Driver.
func New(cfg Config, deps Deps) (Source, error) {
	switch cfg.Driver {
	case DriverHTTP, "":
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout()), nil
	case DriverStorage:
		if deps.Storage == nil {
			return nil, errors.New("storage source requires a storage client")
		}
		return NewStorageSource(deps.Storage, deps.Bucket, cfg.Prefix), nil
	case DriverDatabase:
		if deps.DB == nil {
			return nil, errors.New("database source requires a database connection")
		}
		return NewDatabaseSource(deps.DB), nil
	case DriverDir:
		return NewDirSource(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}

// Timeout returns the per-request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
