// Package catalog holds the storefront DTOs: purchasable packages and
// per-unit campaign services.
package catalog

import (
	"encoding/json"
	"time"
)

// Package is a bundled offering with a fixed price.
type Package struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Price       json.Number   `json:"price"`
	Description string        `json:"description"`
	IsActive    bool          `json:"is_active"`
	Items       []PackageItem `json:"items,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// PackageItem is one deliverable inside a package.
type PackageItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Campaign is a per-unit priced service (e.g. per poster, per day).
type Campaign struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Unit        string      `json:"unit"`
	Description string      `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
