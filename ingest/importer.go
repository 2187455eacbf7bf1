package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/guddy2005/real-estate-app/catalog/jsonfile"
	"github.com/guddy2005/real-estate-app/core"
)

// CatalogWriter is the subset of the persistent store the importer
// writes regions through.
type CatalogWriter interface {
	PutRegion(ctx context.Context, region *core.Region) error
	SetRegionKeys(ctx context.Context, keys []string) error
}

// ProfileWriter is the subset of the persistent store the importer
// writes profiles through.
type ProfileWriter interface {
	PutProfile(ctx context.Context, id string, profile *core.UserProfile) error
}

// Report summarizes a completed import.
type Report struct {
	Regions    int
	Properties int
	Profiles   int
}

// Importer loads catalog and user JSON files into the persistent store.
// Region writes run concurrently through a worker pool.
type Importer struct {
	store    CatalogWriter
	profiles ProfileWriter
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the worker pool size for concurrent region writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(imp *Importer) error {
		if size < 1 {
			size = 1
		}

		if imp.pool != nil {
			imp.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		imp.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(imp *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		imp.logger = logger
		return nil
	}
}

// NewImporter creates a new importer.
func NewImporter(store CatalogWriter, profiles ProfileWriter, opts ...Option) (*Importer, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if profiles == nil {
		return nil, ErrProfileStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	imp := &Importer{
		store:    store,
		profiles: profiles,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(imp); optErr != nil {
			imp.Release()
			return nil, optErr
		}
	}

	return imp, nil
}

// ImportCatalog validates a catalog file against the schema and writes
// its regions to the store. The stored key order follows the loader's
// sorted region order.
func (imp *Importer) ImportCatalog(ctx context.Context, path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if err := validateCatalogDocument(raw); err != nil {
		return nil, err
	}

	regions, err := jsonfile.LoadCatalog(path)
	if err != nil {
		return nil, err
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		writeErrs []error
	)
	for i := range regions {
		region := &regions[i]
		wg.Add(1)
		if err := imp.pool.Submit(func() {
			defer wg.Done()
			if err := imp.store.PutRegion(ctx, region); err != nil {
				imp.logger.Error("region write failed", "region", region.Key, "err", err)
				mu.Lock()
				writeErrs = append(writeErrs, fmt.Errorf("region %q: %w", region.Key, err))
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	if len(writeErrs) > 0 {
		return nil, errors.Join(writeErrs...)
	}

	keys := make([]string, 0, len(regions))
	properties := 0
	for i := range regions {
		keys = append(keys, regions[i].Key)
		properties += len(regions[i].Properties)
	}
	if err := imp.store.SetRegionKeys(ctx, keys); err != nil {
		return nil, err
	}

	report := &Report{Regions: len(regions), Properties: properties}
	imp.logger.Info("catalog imported",
		"path", path, "regions", report.Regions, "properties", report.Properties)
	return report, nil
}

// ImportUsers writes the profiles from a user file to the store.
func (imp *Importer) ImportUsers(ctx context.Context, path string) (*Report, error) {
	profiles, err := jsonfile.LoadUsers(path)
	if err != nil {
		return nil, err
	}

	for id, profile := range profiles {
		if err := imp.profiles.PutProfile(ctx, id, profile); err != nil {
			return nil, fmt.Errorf("user %q: %w", id, err)
		}
	}

	report := &Report{Profiles: len(profiles)}
	imp.logger.Info("users imported", "path", path, "profiles", report.Profiles)
	return report, nil
}

// Release releases the worker pool.
// The importer should not be used after calling Release.
func (imp *Importer) Release() {
	if imp.pool != nil {
		imp.pool.Release()
	}
}
