package domain

// Link is the sole persistent entity: one row per shortened URL.
// Rows are insert-only; the only column ever updated is Visits.
type Link struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ShortCode   string `gorm:"uniqueIndex;not null;size:32" json:"shortCode"`
	OriginalURL string `gorm:"not null;type:text" json:"originalUrl"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // epoch milliseconds
	Visits      int64  `gorm:"default:0" json:"visits"`
}

// TableName specifies the table name for GORM
func (Link) TableName() string {
	return "links"
}

// ShortenRequest is the request payload for POST /api/shorten
type ShortenRequest struct {
	URL        string `json:"url"`
	CustomCode string `json:"customCode,omitempty"`
}

// ShortenResponse is returned on a successful shorten call
type ShortenResponse struct {
	Success     bool   `json:"success"`
	ShortCode   string `json:"shortCode"`
	OriginalURL string `json:"originalUrl"`
	ShortURL    string `json:"shortUrl"`
}

// ErrorResponse is the shape of every failed API call
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is the liveness check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
