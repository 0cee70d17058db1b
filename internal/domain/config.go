package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFeedURL serves the product catalog used to seed every session.
const DefaultFeedURL = "https://raw.githubusercontent.com/Algoritmos-y-Programacion/api-proyecto/main/products.json"

// Config holds store configuration loaded from .partsdesk.yaml.
type Config struct {
	FeedURL          string   `yaml:"feed_url"           json:"feed_url,omitempty"`
	// FeedPath, when set, replaces FeedURL with a local JSON file.
	FeedPath         string   `yaml:"feed_path"          json:"feed_path,omitempty"`
	FeedTimeout      string   `yaml:"feed_timeout"       json:"feed_timeout,omitempty"`
	DataDir          string   `yaml:"data_dir"           json:"data_dir,omitempty"`
	TaxRate          *float64 `yaml:"tax_rate"           json:"tax_rate,omitempty"`
	SurchargeRate    *float64 `yaml:"surcharge_rate"     json:"surcharge_rate,omitempty"`
	CashDiscountRate *float64 `yaml:"cash_discount_rate" json:"cash_discount_rate,omitempty"`
	CreditTerms      []int    `yaml:"credit_terms"       json:"credit_terms,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		FeedURL:     DefaultFeedURL,
		FeedTimeout: "15s",
		DataDir:     "data",
		CreditTerms: []int{15, 30},
	}
}

// WithDefaults fills every unset field from DefaultConfig. Explicit values win.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.FeedURL == "" {
		c.FeedURL = d.FeedURL
	}
	if c.FeedTimeout == "" {
		c.FeedTimeout = d.FeedTimeout
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if len(c.CreditTerms) == 0 {
		c.CreditTerms = d.CreditTerms
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	rates := []struct {
		name string
		v    *float64
	}{
		{"tax_rate", c.TaxRate},
		{"surcharge_rate", c.SurchargeRate},
		{"cash_discount_rate", c.CashDiscountRate},
	}
	for _, r := range rates {
		if r.v != nil && (*r.v < 0 || *r.v >= 1) {
			return fmt.Errorf("%s must be in [0, 1) (got %.4f)", r.name, *r.v)
		}
	}

	for i, days := range c.CreditTerms {
		if days <= 0 {
			return fmt.Errorf("credit_terms[%d] must be > 0 (got %d)", i, days)
		}
		for _, prev := range c.CreditTerms[:i] {
			if prev == days {
				return fmt.Errorf("credit_terms contains %d twice", days)
			}
		}
	}

	if c.FeedTimeout != "" {
		d, err := time.ParseDuration(c.FeedTimeout)
		if err != nil {
			return fmt.Errorf("feed_timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("feed_timeout must be positive (got %s)", c.FeedTimeout)
		}
	}

	return nil
}

// Rates converts the configured percentages, falling back to DefaultRates.
func (c Config) Rates() Rates {
	r := DefaultRates()
	if c.TaxRate != nil {
		r.Tax = decimal.NewFromFloat(*c.TaxRate)
	}
	if c.SurchargeRate != nil {
		r.Surcharge = decimal.NewFromFloat(*c.SurchargeRate)
	}
	if c.CashDiscountRate != nil {
		r.CashDiscount = decimal.NewFromFloat(*c.CashDiscountRate)
	}
	return r
}

// Timeout returns the feed timeout. Call after Validate.
func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FeedTimeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// AllowsCreditTerm reports whether days is one of the configured credit terms.
func (c Config) AllowsCreditTerm(days int) bool {
	for _, d := range c.CreditTerms {
		if d == days {
			return true
		}
	}
	return false
}
