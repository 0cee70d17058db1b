package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// record is one product as published by the feed.
type record struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
	Compatible  []string        `json:"compatible_vehicles"`
}

// New picks the file feed when cfg.FeedPath is set and the HTTP feed otherwise.
func New(cfg domain.Config) domain.ProductFeed {
	if cfg.FeedPath != "" {
		return NewFile(cfg.FeedPath)
	}
	return NewHTTP(cfg.FeedURL, http.DefaultClient)
}

// HTTPFeed implements domain.ProductFeed over a JSON URL.
type HTTPFeed struct {
	url    string
	client *http.Client
}

func NewHTTP(url string, client *http.Client) *HTTPFeed {
	return &HTTPFeed{url: url, client: client}
}

func (f *HTTPFeed) Fetch(ctx context.Context) ([]*domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", f.url, resp.Status)
	}
	return decode(resp.Body)
}

// FileFeed implements domain.ProductFeed over a local JSON file.
type FileFeed struct {
	path string
}

func NewFile(path string) *FileFeed {
	return &FileFeed{path: path}
}

func (f *FileFeed) Fetch(_ context.Context) ([]*domain.Product, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return decode(file)
}

func decode(r io.Reader) ([]*domain.Product, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	products := make([]*domain.Product, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, rec := range records {
		if seen[rec.ID] {
			return nil, fmt.Errorf("feed entry %d: duplicate product id %d", i, rec.ID)
		}
		seen[rec.ID] = true

		p := &domain.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Price:       rec.Price,
			Category:    rec.Category,
			Inventory:   rec.Inventory,
		}
		if p.Inventory < 0 || p.Price.IsNegative() {
			return nil, fmt.Errorf("feed entry %d (%s): negative price or inventory", i, rec.Name)
		}
		for _, v := range rec.Compatible {
			// The feed may repeat a vehicle with different case; keep the first.
			if !p.IsCompatible(v) {
				p.Compatible = append(p.Compatible, v)
			}
		}
		products = append(products, p)
	}
	return products, nil
}
