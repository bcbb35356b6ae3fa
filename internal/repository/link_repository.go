package repository

import (
	"context"

	"shortlink/internal/domain"
)

// LinkRepository defines the contract for link data access.
// The interface keeps business logic independent of the storage engine,
// so tests can run the same repository against an embedded database.
type LinkRepository interface {
	// Create inserts a new link. Returns domain.ErrCodeTaken when the short
	// code is already assigned; the unique constraint is the source of truth
	// for any check-then-insert race.
	Create(ctx context.Context, link *domain.Link) error

	// FindByShortCode retrieves a link by its short code
	FindByShortCode(ctx context.Context, shortCode string) (*domain.Link, error)

	// FindByOriginalURL checks if an original URL already has a short code
	FindByOriginalURL(ctx context.Context, originalURL string) (*domain.Link, error)

	// ExistsByShortCode checks if a short code exists without fetching the row
	ExistsByShortCode(ctx context.Context, shortCode string) (bool, error)

	// IncrementVisits atomically increments the visit counter.
	// Returns domain.ErrLinkNotFound when the code no longer exists.
	IncrementVisits(ctx context.Context, shortCode string) error
}
