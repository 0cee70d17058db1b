package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/partsdesk/partsdesk/internal/domain"
)

// FeedFactory builds the product feed selected by the config.
type FeedFactory func(cfg domain.Config) domain.ProductFeed

// SessionService is the persistence gateway: it seeds a session from the
// product feed and flushes the session collections when it ends.
type SessionService struct {
	configs   domain.ConfigLoader
	feeds     FeedFactory
	snapshots domain.SnapshotStore
}

func NewSessionService(configs domain.ConfigLoader, feeds FeedFactory, snapshots domain.SnapshotStore) *SessionService {
	return &SessionService{configs: configs, feeds: feeds, snapshots: snapshots}
}

// Session bundles the services of one interactive run.
type Session struct {
	Dir       string
	Config    domain.Config
	Store     *Store
	Catalog   *CatalogService
	Customers *CustomerService
	Sales     *SaleService
	Payments  *PaymentService
	Shipments *ShipmentService
	Stats     *StatsService
}

// NewSession wires the services over an existing store.
func NewSession(dir string, cfg domain.Config, store *Store) *Session {
	return &Session{
		Dir:       dir,
		Config:    cfg,
		Store:     store,
		Catalog:   NewCatalogService(store),
		Customers: NewCustomerService(store),
		Sales:     NewSaleService(store, cfg),
		Payments:  NewPaymentService(store),
		Shipments: NewShipmentService(store),
		Stats:     NewStatsService(store),
	}
}

// DataDir is where the session is saved.
func (s *Session) DataDir() string {
	return DataDir(s.Dir, s.Config)
}

// DataDir resolves cfg.DataDir against the store directory.
func DataDir(dir string, cfg domain.Config) string {
	return within(dir, cfg.DataDir)
}

// Config loads and completes the configuration found in dir. A relative
// feed path is taken relative to dir.
func (s *SessionService) Config(dir string) (domain.Config, error) {
	cfg, err := s.configs.Load(dir)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.WithDefaults()
	if cfg.FeedPath != "" {
		cfg.FeedPath = within(dir, cfg.FeedPath)
	}
	return cfg, nil
}

// Open loads config from dir and seeds the catalog from the feed. A feed
// failure is returned before any state exists.
func (s *SessionService) Open(ctx context.Context, dir string) (*Session, error) {
	cfg, err := s.Config(dir)
	if err != nil {
		return nil, err
	}
	products, err := s.FetchCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewSession(dir, cfg, NewStore(products)), nil
}

// FetchCatalog reads the product feed selected by cfg.
func (s *SessionService) FetchCatalog(ctx context.Context, cfg domain.Config) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	products, err := s.feeds(cfg).Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading product feed: %w", err)
	}
	return products, nil
}

// Save writes every collection of the session under its data directory.
func (s *SessionService) Save(sess *Session) (*domain.Manifest, error) {
	manifest, err := s.snapshots.Save(sess.DataDir(), sess.Store.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return manifest, nil
}

// OpenSaved rebuilds the last saved session read-only, for reporting.
// Interactive runs never start from it.
func (s *SessionService) OpenSaved(dir string) (*Session, error) {
	cfg, err := s.Config(dir)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshots.Load(DataDir(dir, cfg))
	if err != nil {
		return nil, fmt.Errorf("reading saved session: %w", err)
	}
	return NewSession(dir, cfg, StoreFromSnapshot(snap)), nil
}

func within(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
