package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
	"github.com/youruser/jashn/internal/wizard"
)

var errInvalidBody = errors.New("invalid body")

type wizardResponse struct {
	ID string `json:"id"`
	wizard.State
}

type startWizardRequest struct {
	Category string `json:"category"`
}

func (h *Handler) StartWizard(c *gin.Context) {
	var req startWizardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	id, w := h.wizards.Start(quotes.Occasion(req.Category))
	c.JSON(http.StatusCreated, wizardResponse{ID: id, State: w.State()})
}

func (h *Handler) lookupWizard(c *gin.Context) (string, *wizard.Wizard, bool) {
	id := c.Param("id")
	w, ok := h.wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard not found"})
		return "", nil, false
	}
	return id, w, true
}

func (h *Handler) GetWizard(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, wizardResponse{ID: id, State: w.State()})
}

// UpdateWizard merges the JSON body into the record; absent fields keep
// their values.
func (h *Handler) UpdateWizard(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := w.Update(func(d *celebration.Data) error {
		if err := json.Unmarshal(body, d); err != nil {
			return fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		return nil
	})
	h.respondWizard(c, id, state, err)
}

func (h *Handler) NextWizard(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	state, err := w.Advance(c.Request.Context())
	h.respondWizard(c, id, state, err)
}

func (h *Handler) BackWizard(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	state, err := w.RequestBack()
	h.respondWizard(c, id, state, err)
}

func (h *Handler) ForwardWizard(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	state, err := w.Forward()
	h.respondWizard(c, id, state, err)
}

// WizardQuote generates an AI quote for the record and selects it.
func (h *Handler) WizardQuote(c *gin.Context) {
	id, w, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	res := h.ai.GenerateQuote(c.Request.Context(), w.QuoteRequest())
	state, err := w.SetGeneratedQuote(res.Quote)
	if err != nil {
		h.respondWizard(c, id, state, err)
		return
	}
	c.JSON(quoteStatus(res), gin.H{"id": id, "quote": newQuoteResponse(res), "state": state})
}

func (h *Handler) respondWizard(c *gin.Context, id string, state wizard.State, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, wizardResponse{ID: id, State: state})
	case errors.Is(err, wizard.ErrFinished), errors.Is(err, wizard.ErrNoHistory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "id": id, "state": state})
	case errors.Is(err, errInvalidBody), errors.Is(err, store.ErrInvalidStory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "id": id, "state": state})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "id": id, "state": state})
	}
}
