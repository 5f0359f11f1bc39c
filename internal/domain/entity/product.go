package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry.
type Product struct {
	ID             int64
	Name           string
	Article        string // Unique SKU.
	Brand          string
	Price          decimal.Decimal
	Description    string
	Category       string
	ImageURL       string
	VINNumbers     string // Comma-separated OEM numbers.
	CompatibleCars string // Comma-separated vehicle list.

	// Optional inventory metadata.
	Stock        int
	Warranty     string
	Country      string
	Weight       float64
	Dimensions   string
	Rating       float64
	ReviewsCount int
	CreatedAt    time.Time
}

// CompatibleCarsList splits CompatibleCars into trimmed entries.
func (p *Product) CompatibleCarsList() []string {
	return splitList(p.CompatibleCars)
}

// VINList splits VINNumbers into trimmed entries.
func (p *Product) VINList() []string {
	return splitList(p.VINNumbers)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
