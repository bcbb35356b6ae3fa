package service

import (
	"context"

	"shortlink/internal/domain"
)

// LinkService defines the business logic for short-link issuance and resolution
type LinkService interface {
	// ShortenLink creates a new short link, or returns the existing mapping
	// when the URL was already shortened
	ShortenLink(ctx context.Context, req *domain.ShortenRequest) (*domain.ShortenResponse, error)

	// Resolve looks up a short code, counts the visit, and returns the
	// original URL to redirect to
	Resolve(ctx context.Context, shortCode string) (string, error)

	// GetLink returns the stored record for a short code, including the
	// current visit count
	GetLink(ctx context.Context, shortCode string) (*domain.Link, error)
}
