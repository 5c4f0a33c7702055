package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/altivento/altivento-backend/pkg/logger"
)

const (
	categoriesFile = "categories.json"
	weddingFile    = "bodas.json"
)

// Snapshot is the fully loaded content set. It is built once and never
// mutated, so it is safe to share across concurrent requests.
type Snapshot struct {
	Categories    []Category
	Wedding       WeddingPackageData
	productsByKey map[string][]Product
}

// Products returns the product list stored under the given physical key.
// Unknown keys yield an empty list, mirroring how a missing content file
// behaves.
func (s *Snapshot) Products(storageKey string) []Product {
	if s == nil {
		return nil
	}
	return s.productsByKey[storageKey]
}

// AllProducts walks every collection in storage-key order and yields the
// products in their stored order. The iteration order is load-bearing:
// resolvers break ties by first encounter.
func (s *Snapshot) AllProducts() []Product {
	if s == nil {
		return nil
	}
	var all []Product
	for _, key := range StorageKeys {
		all = append(all, s.productsByKey[key]...)
	}
	return all
}

// Store reads the content directory once and caches the snapshot for the
// lifetime of the process. The data is static per deployment, so there is
// no invalidation.
type Store struct {
	dir  string
	logg *logger.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(dir string, logg *logger.Logger) *Store {
	return &Store{dir: dir, logg: logg}
}

// Load parses every content file into a snapshot. Missing or corrupt
// product files degrade to empty collections with a warning; a missing
// category or wedding file is a hard error because nothing works without
// them.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	if s.snap != nil {
		defer s.mu.RUnlock()
		return s.snap, nil
	}
	s.mu.RUnlock()

	categories, err := loadJSON[[]Category](filepath.Join(s.dir, categoriesFile))
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	wedding, err := loadJSON[WeddingPackageData](filepath.Join(s.dir, weddingFile))
	if err != nil {
		return nil, fmt.Errorf("loading wedding data: %w", err)
	}

	productsByKey := make(map[string][]Product, len(StorageKeys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range StorageKeys {
		key := key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			products, err := loadJSON[[]Product](filepath.Join(s.dir, key+".json"))
			if err != nil {
				if s.logg != nil {
					warnCtx := s.logg.WithStorageKey(gctx, key)
					s.logg.Warn(warnCtx, "content.products.unreadable, serving empty collection")
				}
				products = nil
			}
			mu.Lock()
			productsByKey[key] = products
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Categories:    categories,
		Wedding:       wedding,
		productsByKey: productsByKey,
	}

	s.mu.Lock()
	if s.snap == nil {
		s.snap = snap
	}
	snap = s.snap
	s.mu.Unlock()
	return snap, nil
}

// Ping reports whether the content directory is usable; the readiness probe
// calls this.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.snap != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	if _, err := os.Stat(filepath.Join(s.dir, categoriesFile)); err != nil {
		return fmt.Errorf("content directory not ready: %w", err)
	}
	return nil
}

func loadJSON[T any](path string) (T, error) {
	var out T
	raw, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// NewSnapshot builds a snapshot directly from in-memory collections. Tests
// and callers that embed their own content use this instead of the disk
// loader.
func NewSnapshot(categories []Category, productsByKey map[string][]Product, wedding WeddingPackageData) (*Snapshot, error) {
	if len(categories) == 0 {
		return nil, errors.New("at least one category required")
	}
	if productsByKey == nil {
		productsByKey = map[string][]Product{}
	}
	return &Snapshot{
		Categories:    categories,
		Wedding:       wedding,
		productsByKey: productsByKey,
	}, nil
}
