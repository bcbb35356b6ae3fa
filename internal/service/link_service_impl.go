package service

import (
	"context"
	"errors"
	"fmt"

	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/domain"
	"shortlink/internal/repository"
	"shortlink/internal/shortener"
	"shortlink/pkg/logger"
	"shortlink/pkg/validator"
)

// maxGenerateAttempts bounds regeneration when a generated code loses the
// insert race. Custom codes are never retried.
const maxGenerateAttempts = 3

// linkService implements the LinkService interface
type linkService struct {
	repo      repository.LinkRepository
	cache     cache.Cache
	cfg       *config.Config
	logger    *logger.Logger
	generator *shortener.CodeGenerator
}

// NewLinkService creates a new link service with dependencies injected.
// cache may be nil; the service then runs straight against the repository.
func NewLinkService(
	repo repository.LinkRepository,
	cache cache.Cache,
	cfg *config.Config,
	logger *logger.Logger,
) LinkService {
	return &linkService{
		repo:      repo,
		cache:     cache,
		cfg:       cfg,
		logger:    logger,
		generator: shortener.NewCodeGenerator(cfg.ShortCodeLength),
	}
}

// ShortenLink creates a new short link with validation and deduplication
func (s *linkService) ShortenLink(ctx context.Context, req *domain.ShortenRequest) (*domain.ShortenResponse, error) {
	// Step 1: Validate the original URL
	if err := validator.ValidateURL(req.URL); err != nil {
		s.logger.Warnw("Invalid URL submitted", "url", req.URL, "error", err)
		return nil, domain.ErrInvalidURL
	}

	// Step 2: Idempotent creation - resubmitting an already-shortened URL
	// returns the existing mapping. This takes priority over any custom code.
	existing, err := s.repo.FindByOriginalURL(ctx, req.URL)
	if err == nil && existing != nil {
		s.logger.Infow("URL already shortened, returning existing", "short_code", existing.ShortCode)
		return s.buildResponse(existing), nil
	}
	if err != nil && !errors.Is(err, domain.ErrLinkNotFound) {
		s.logger.Errorw("Failed to look up original URL", "error", err)
		return nil, domain.ErrCreateFailed
	}

	// Step 3: Custom code - validate and check availability. The check is an
	// early exit; the unique constraint on insert is the real arbiter.
	if req.CustomCode != "" {
		if !validator.ValidateShortCode(req.CustomCode) {
			return nil, domain.ErrCodeInvalid
		}

		taken, err := s.repo.ExistsByShortCode(ctx, req.CustomCode)
		if err != nil {
			s.logger.Errorw("Failed to check short code availability", "error", err)
			return nil, domain.ErrCreateFailed
		}
		if taken {
			return nil, domain.ErrCodeTaken
		}

		return s.insert(ctx, req.URL, req.CustomCode, true)
	}

	// Step 4: Generated code - insert with bounded regeneration on collision
	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		code, err := s.generator.Generate()
		if err != nil {
			s.logger.Errorw("Failed to generate short code", "error", err)
			return nil, domain.ErrCreateFailed
		}

		resp, err := s.insert(ctx, req.URL, code, false)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return nil, err
		}

		lastErr = err
		s.logger.Warnw("Generated code collision, retrying",
			"short_code", code,
			"attempt", attempt,
		)
	}

	s.logger.Errorw("Exhausted short code generation attempts", "error", lastErr)
	return nil, domain.ErrCreateFailed
}

// insert persists the link and caches the fresh mapping
func (s *linkService) insert(ctx context.Context, originalURL, shortCode string, custom bool) (*domain.ShortenResponse, error) {
	link := &domain.Link{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		Visits:      0,
	}

	if err := s.repo.Create(ctx, link); err != nil {
		if errors.Is(err, domain.ErrCodeTaken) {
			// Lost the check-then-insert race. Custom codes surface the same
			// conflict as the pre-check; generated codes get retried by the
			// caller.
			return nil, domain.ErrCodeTaken
		}
		s.logger.Errorw("Failed to create link", "error", err, "short_code", shortCode)
		return nil, domain.ErrCreateFailed
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, shortCode, originalURL, s.cfg.CacheTTL); err != nil {
			// Cache failures never fail the request
			s.logger.Warnw("Failed to cache link", "error", err, "short_code", shortCode)
		}
	}

	s.logger.Infow("Link created",
		"short_code", shortCode,
		"original_url", originalURL,
		"custom", custom,
	)

	return s.buildResponse(link), nil
}

// Resolve looks up a short code and counts the visit.
// The increment is issued synchronously on every hit, cache or not, so N
// redirects always move the stored counter by exactly N. It is best-effort:
// a failed increment is logged but never blocks the redirect.
func (s *linkService) Resolve(ctx context.Context, shortCode string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, shortCode)
		if err == nil && cached != "" {
			if err := s.repo.IncrementVisits(ctx, shortCode); err != nil {
				s.logger.Errorw("Failed to increment visits", "error", err, "short_code", shortCode)
			}
			s.logger.Debugw("Cache hit", "short_code", shortCode)
			return cached, nil
		}
	}

	link, err := s.repo.FindByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			s.logger.Warnw("Short code not found", "short_code", shortCode)
			return "", domain.ErrLinkNotFound
		}
		s.logger.Errorw("Failed to look up short code", "error", err)
		return "", err
	}

	if err := s.repo.IncrementVisits(ctx, shortCode); err != nil {
		s.logger.Errorw("Failed to increment visits", "error", err, "short_code", shortCode)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, shortCode, link.OriginalURL, s.cfg.CacheTTL); err != nil {
			s.logger.Warnw("Failed to update cache", "error", err, "short_code", shortCode)
		}
	}

	return link.OriginalURL, nil
}

// GetLink returns the stored record for a short code
func (s *linkService) GetLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	return s.repo.FindByShortCode(ctx, shortCode)
}

// buildResponse constructs the API response with the full short URL
func (s *linkService) buildResponse(link *domain.Link) *domain.ShortenResponse {
	return &domain.ShortenResponse{
		Success:     true,
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		ShortURL:    fmt.Sprintf("%s/%s", s.cfg.BaseURL, link.ShortCode),
	}
}
