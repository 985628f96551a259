package configs

import (
	"strings"

	"mesa-fund/internal/core/domain"
)

// Ledger configures the campaign ledger. Storage selects the repository
// backend: "memory" keeps state in process, "postgres" uses the Psql
// section. Text limits are byte lengths.
type Ledger struct {
	Storage        string `env:"STORAGE" envDefault:"memory"`
	LatestDefault  int    `env:"LATEST_DEFAULT" envDefault:"4"`
	LatestMax      int    `env:"LATEST_MAX" envDefault:"100"`
	MaxTitle       int    `env:"MAX_TITLE_BYTES" envDefault:"200"`
	MaxDescription int    `env:"MAX_DESCRIPTION_BYTES" envDefault:"5000"`
	MaxMediaRef    int    `env:"MAX_MEDIA_REF_BYTES" envDefault:"2048"`
	// SeedCampaigns creates that many demo campaigns on startup.
	SeedCampaigns int `env:"SEED_CAMPAIGNS" envDefault:"0"`
}

// StorageKind normalises Storage. Unknown values fall back to "memory".
func (c Ledger) StorageKind() string {
	switch strings.ToLower(c.Storage) {
	case "postgres", "postgresql", "pg":
		return "postgres"
	default:
		return "memory"
	}
}

// TextLimits returns the configured limits as domain.TextLimits.
func (c Ledger) TextLimits() domain.TextLimits {
	return domain.TextLimits{Title: c.MaxTitle, Description: c.MaxDescription, MediaRef: c.MaxMediaRef}
}
