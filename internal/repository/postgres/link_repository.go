package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

// linkRepository implements the LinkRepository interface on top of GORM.
// The gorm.DB handle must be opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey on every dialect.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new GORM-backed link repository
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// Create inserts a new link record into the database
func (r *linkRepository) Create(ctx context.Context, link *domain.Link) error {
	result := r.db.WithContext(ctx).Create(link)
	if result.Error != nil {
		// Unique constraint violation on short_code
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCodeTaken
		}
		return domain.NewInternalError(result.Error)
	}
	return nil
}

// FindByShortCode retrieves a link by its short code
// Returns ErrLinkNotFound if the code doesn't exist
func (r *linkRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	var link domain.Link

	result := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&link)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &link, nil
}

// FindByOriginalURL checks if an original URL already exists.
// Returns the lowest-id match; service-level deduplication keeps multiples
// from existing in practice.
func (r *linkRepository) FindByOriginalURL(ctx context.Context, originalURL string) (*domain.Link, error) {
	var link domain.Link

	result := r.db.WithContext(ctx).
		Where("original_url = ?", originalURL).
		First(&link)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, domain.NewInternalError(result.Error)
	}

	return &link, nil
}

// ExistsByShortCode checks if a short code exists without loading the full record
// More efficient than FindByShortCode when you only need an existence check
func (r *linkRepository) ExistsByShortCode(ctx context.Context, shortCode string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&domain.Link{}).
		Where("short_code = ?", shortCode).
		Count(&count)

	if result.Error != nil {
		return false, domain.NewInternalError(result.Error)
	}

	return count > 0, nil
}

// IncrementVisits atomically increments the visit counter.
// A single UPDATE avoids the SELECT-then-UPDATE race under concurrent redirects.
func (r *linkRepository) IncrementVisits(ctx context.Context, shortCode string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Link{}).
		Where("short_code = ?", shortCode).
		Update("visits", gorm.Expr("visits + ?", 1))

	if result.Error != nil {
		return domain.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrLinkNotFound
	}

	return nil
}
