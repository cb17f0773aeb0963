package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/logger"
)

// PosterStyling returns a collage palette. It always answers 200.
func (h *Handler) PosterStyling(c *gin.Context) {
	h.palette(c, ai.PaletteCollage)
}

// PosterLayout returns a single panel palette. It always answers 200.
func (h *Handler) PosterLayout(c *gin.Context) {
	h.palette(c, ai.PaletteSinglePanel)
}

func (h *Handler) palette(c *gin.Context, kind ai.PaletteKind) {
	var req ai.PaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("palette request: %v, using fallback", err)
		c.JSON(http.StatusOK, ai.FallbackPalette(kind))
		return
	}
	c.JSON(http.StatusOK, h.ai.GeneratePalette(c.Request.Context(), kind, req))
}

type quoteResponse struct {
	Quote    string `json:"quote"`
	Fallback bool   `json:"fallback"`
	Error    string `json:"error,omitempty"`
}

func newQuoteResponse(res ai.QuoteResult) quoteResponse {
	out := quoteResponse{Quote: res.Quote, Fallback: res.Fallback}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// quoteStatus is 500 only when no upstream is configured.
func quoteStatus(res ai.QuoteResult) int {
	if errors.Is(res.Err, ai.ErrNoCredentials) {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// GenerateQuote proxies a greeting quote request.
func (h *Handler) GenerateQuote(c *gin.Context) {
	var req ai.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, quoteResponse{
			Quote:    ai.FallbackQuote(ai.QuoteRequest{}),
			Fallback: true,
			Error:    err.Error(),
		})
		return
	}
	res := h.ai.GenerateQuote(c.Request.Context(), req)
	c.JSON(quoteStatus(res), newQuoteResponse(res))
}
