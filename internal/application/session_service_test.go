package application_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigs struct {
	cfg domain.Config
	err error
}

func (f fakeConfigs) Load(string) (domain.Config, error) { return f.cfg, f.err }

type fakeFeed struct {
	products []*domain.Product
	err      error
	deadline bool
}

func (f *fakeFeed) Fetch(ctx context.Context) ([]*domain.Product, error) {
	_, f.deadline = ctx.Deadline()
	return f.products, f.err
}

type fakeSnapshots struct {
	savedDir string
	saved    *domain.Snapshot
	loadDir  string
}

func (f *fakeSnapshots) Save(dir string, snap *domain.Snapshot) (*domain.Manifest, error) {
	f.savedDir, f.saved = dir, snap
	return &domain.Manifest{SavedAt: march14, Counts: map[string]int{"sales": len(snap.Sales)}}, nil
}

func (f *fakeSnapshots) Load(dir string) (*domain.Snapshot, error) {
	f.loadDir = dir
	if f.saved == nil {
		return nil, domain.ErrNotFound
	}
	return f.saved, nil
}

func feedProducts(t *testing.T) []*domain.Product {
	t.Helper()
	pad, err := domain.NewProduct(0, "Brake pad", "Front pads", decimal.NewFromInt(10), "Brakes", 5, nil)
	require.NoError(t, err)
	return []*domain.Product{pad}
}

func TestSessionService_OpenAndSave(t *testing.T) {
	feed := &fakeFeed{products: feedProducts(t)}
	snaps := &fakeSnapshots{}
	var picked domain.Config
	svc := application.NewSessionService(
		fakeConfigs{cfg: domain.Config{FeedPath: "catalog.json"}},
		func(cfg domain.Config) domain.ProductFeed { picked = cfg; return feed },
		snaps,
	)

	sess, err := svc.Open(context.Background(), "/srv/store")
	require.NoError(t, err)
	assert.True(t, feed.deadline, "feed is fetched under a timeout")
	assert.Equal(t, filepath.Join("/srv/store", "catalog.json"), picked.FeedPath)
	assert.Equal(t, "data", sess.Config.DataDir)
	assert.Len(t, sess.Catalog.All(), 1)
	assert.Empty(t, sess.Customers.All())

	m, err := svc.Save(sess)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/store", "data"), snaps.savedDir)
	assert.Equal(t, 0, m.Counts["sales"])

	reopened, err := svc.OpenSaved("/srv/store")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/store", "data"), snaps.loadDir)
	assert.Len(t, reopened.Store.Products, 1)
}

func TestSessionService_FeedFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := application.NewSessionService(
		fakeConfigs{cfg: domain.DefaultConfig()},
		func(domain.Config) domain.ProductFeed { return &fakeFeed{err: boom} },
		&fakeSnapshots{},
	)
	sess, err := svc.Open(context.Background(), t.TempDir())
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "loading product feed")
}

func TestSessionService_ConfigFailure(t *testing.T) {
	svc := application.NewSessionService(
		fakeConfigs{err: errors.New("bad yaml")},
		func(domain.Config) domain.ProductFeed { t.Fatal("feed must not be built"); return nil },
		&fakeSnapshots{},
	)
	_, err := svc.Open(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "loading config")
}

func TestSessionService_AbsoluteDataDir(t *testing.T) {
	snaps := &fakeSnapshots{}
	abs := filepath.Join(t.TempDir(), "elsewhere")
	svc := application.NewSessionService(
		fakeConfigs{cfg: domain.Config{DataDir: abs}},
		func(domain.Config) domain.ProductFeed { return &fakeFeed{} },
		snaps,
	)
	_, err := svc.OpenSaved("/srv/store")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, abs, snaps.loadDir)
}

func TestStoreFromSnapshot_ContinuesSaleIDs(t *testing.T) {
	store := application.StoreFromSnapshot(&domain.Snapshot{
		Products: feedProducts(t),
		Sales:    []*domain.Sale{{ID: 0}, {ID: 4}},
	})
	store.SetClock(func() time.Time { return march14 })
	sess := application.NewSession(t.TempDir(), domain.DefaultConfig(), store)
	c, err := sess.Customers.RegisterIndividual("ana@example.com", "Av. Bolivar 12", "04141234567", "Ana Perez", "1234567")
	require.NoError(t, err)

	r := sell(t, sess, c.Key(), 0, 1, domain.CashPlan(), domain.PointOfSale, domain.CourierService)
	assert.Equal(t, 5, r.Sale.ID)
}

func TestStoreFromSnapshot_SkipsIDsOfRemovedProducts(t *testing.T) {
	store := application.StoreFromSnapshot(&domain.Snapshot{
		Products: feedProducts(t),
		Sales:    []*domain.Sale{{ID: 0, Lines: []domain.SaleLine{{ProductID: 7, Name: "Wiper", Quantity: 1}}}},
	})
	sess := application.NewSession(t.TempDir(), domain.DefaultConfig(), store)

	p, err := sess.Catalog.Add("Spark plug", "Iridium", decimal.NewFromInt(4), "Engine", 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, p.ID)
}
