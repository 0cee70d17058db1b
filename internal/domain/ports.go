package domain

import (
	"context"
	"time"
)

// ProductFeed fetches the read-only catalog used to seed a session.
type ProductFeed interface {
	Fetch(ctx context.Context) ([]*Product, error)
}

// ConfigLoader loads store configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// SnapshotStore persists the five collections as flat record files.
type SnapshotStore interface {
	Save(dir string, snap *Snapshot) (*Manifest, error)
	Load(dir string) (*Snapshot, error)
}

// SaveHistory keeps the manifest of every save of a data directory.
type SaveHistory interface {
	Append(dataDir string, m Manifest) error
	Load(dataDir string) ([]Manifest, error)
}

// GitInfo reads version-control metadata of a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// Snapshot is the whole session state at one instant.
type Snapshot struct {
	Customers []Customer
	Products  []*Product
	Sales     []*Sale
	Payments  []*Payment
	Shipments []*Shipment
}

// Manifest describes a saved snapshot.
type Manifest struct {
	SavedAt    time.Time      `json:"saved_at"`
	CommitHash string         `json:"commit_hash,omitempty"`
	Counts     map[string]int `json:"counts"`
}
