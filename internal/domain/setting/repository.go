package setting

import (
	"context"
)

// Repository defines persistence for the settings singleton
type Repository interface {
	// GetOrCreate returns the settings row, inserting defaults atomically
	// when it does not exist yet. Concurrent first reads observe one row.
	GetOrCreate(ctx context.Context) (*Settings, error)

	// SaveSection persists one section of s without touching the others.
	SaveSection(ctx context.Context, s *Settings, section Section) error
}
