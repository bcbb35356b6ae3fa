package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortlink/internal/domain"
	"shortlink/internal/service"
	"shortlink/pkg/logger"
)

// Client-facing error messages. These are the only strings the API emits on
// a failed create; internal error detail stays in the logs.
const (
	msgInvalidURL     = "Invalid URL"
	msgCodeTaken      = "Custom code already in use"
	msgCreateFailed   = "Error creating link"
	msgInvalidRequest = "Invalid request"
	msgLinkNotFound   = "Link not found"
)

// LinkHandler handles HTTP requests for link operations
type LinkHandler struct {
	service service.LinkService
	logger  *logger.Logger
}

// NewLinkHandler creates a new link handler with dependencies
func NewLinkHandler(service service.LinkService, logger *logger.Logger) *LinkHandler {
	return &LinkHandler{
		service: service,
		logger:  logger,
	}
}

// Root handles GET /
// Returns a plain-text service banner
func (h *LinkHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "shortlink URL shortener is running")
}

// Shorten handles POST /api/shorten
// Creates a new short link or returns the existing mapping for the URL
func (h *LinkHandler) Shorten(c *gin.Context) {
	var req domain.ShortenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Success: false,
			Error:   msgInvalidRequest,
		})
		return
	}

	resp, err := h.service.ShortenLink(c.Request.Context(), &req)
	if err != nil {
		h.handleShortenError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Redirect handles GET /:code
// Issues a temporary redirect to the original URL and counts the visit
func (h *LinkHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("code")

	originalURL, err := h.service.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			c.String(http.StatusNotFound, msgLinkNotFound)
			return
		}
		h.logger.Errorw("Redirect failed", "error", err, "short_code", shortCode)
		c.String(http.StatusNotFound, msgLinkNotFound)
		return
	}

	// 302 so every hit reaches the server and the visit counter stays
	// accurate; a 301 would let clients cache the hop.
	c.Redirect(http.StatusFound, originalURL)
}

// GetLink handles GET /api/links/:code
// Returns the stored record including the current visit count
func (h *LinkHandler) GetLink(c *gin.Context) {
	shortCode := c.Param("code")

	link, err := h.service.GetLink(c.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse{
				Success: false,
				Error:   msgLinkNotFound,
			})
			return
		}
		h.logger.Errorw("Failed to fetch link", "error", err, "short_code", shortCode)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Success: false,
			Error:   "Internal error",
		})
		return
	}

	c.JSON(http.StatusOK, link)
}

// NotFound handles every unmatched route
func (h *LinkHandler) NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}

// handleShortenError maps service errors to the API's failure responses.
// Every create failure is a 400 with one of the fixed messages.
func (h *LinkHandler) handleShortenError(c *gin.Context, err error) {
	var msg string

	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		msg = msgInvalidURL
	case errors.Is(err, domain.ErrCodeTaken):
		msg = msgCodeTaken
	case errors.Is(err, domain.ErrCodeInvalid):
		msg = msgInvalidRequest
	case errors.Is(err, domain.ErrCreateFailed):
		msg = msgCreateFailed
	default:
		h.logger.Errorw("Unexpected error creating link", "error", err)
		msg = msgCreateFailed
	}

	c.JSON(http.StatusBadRequest, domain.ErrorResponse{
		Success: false,
		Error:   msg,
	})
}
