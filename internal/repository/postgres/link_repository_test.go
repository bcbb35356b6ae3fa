package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

// setupRepo runs the repository against an in-memory sqlite database so the
// gorm queries and the unique constraint are exercised for real. A named DSN
// keeps each test's database isolated while sharing it across pooled
// connections.
func setupRepo(t *testing.T) repository.LinkRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Link{}))

	return NewLinkRepository(db)
}

func TestCreateAndFindByShortCode(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	link := &domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
	}
	require.NoError(t, repo.Create(ctx, link))

	assert.NotZero(t, link.ID)
	assert.NotZero(t, link.CreatedAt, "CreatedAt should be assigned at insert")

	found, err := repo.FindByShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.OriginalURL)
	assert.Equal(t, int64(0), found.Visits)
}

func TestCreate_DuplicateShortCode(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "taken1",
		OriginalURL: "https://example.com/a",
	}))

	err := repo.Create(ctx, &domain.Link{
		ShortCode:   "taken1",
		OriginalURL: "https://example.com/b",
	})
	assert.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestCreate_DuplicateOriginalURLAllowed(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// originalUrl carries no storage-level uniqueness; only the service
	// deduplicates it
	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "first1",
		OriginalURL: "https://example.com",
	}))
	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "second",
		OriginalURL: "https://example.com",
	}))
}

func TestFindByShortCode_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.FindByShortCode(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestFindByOriginalURL(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "qwerty",
		OriginalURL: "https://example.com/page",
	}))

	found, err := repo.FindByOriginalURL(ctx, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "qwerty", found.ShortCode)

	_, err = repo.FindByOriginalURL(ctx, "https://example.com/other")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestExistsByShortCode(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "exists",
		OriginalURL: "https://example.com",
	}))

	exists, err := repo.ExistsByShortCode(ctx, "exists")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByShortCode(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIncrementVisits(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Link{
		ShortCode:   "visits",
		OriginalURL: "https://example.com",
	}))

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, repo.IncrementVisits(ctx, "visits"))
	}

	found, err := repo.FindByShortCode(ctx, "visits")
	require.NoError(t, err)
	assert.Equal(t, int64(n), found.Visits)
}

func TestIncrementVisits_NotFound(t *testing.T) {
	repo := setupRepo(t)

	err := repo.IncrementVisits(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}
