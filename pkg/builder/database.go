package builder

import "github.com/Egham-7/cover-letter-ai/internal/models"

// WithDatabase enables the resolution log.
func (b *Builder) WithDatabase(cfg models.DatabaseConfig) *Builder {
	b.cfg.Database = &cfg
	return b
}
