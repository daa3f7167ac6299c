package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
	"github.com/kryshchuk/super-pizza-order/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /sessions
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	session, err := h.service.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"created_at": session.CreatedAt,
	})
}

//
// --------------------------------------------------
// DELETE /sessions/:id
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

//
// --------------------------------------------------
// POST /sessions/:id/toppings/toggle
// --------------------------------------------------
//

func (h *Handler) ToggleTopping(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req struct {
		Topping string `json:"topping" binding:"required"`
		Size    string `json:"size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	size, err := catalog.ParseSize(req.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size: " + req.Size})
		return
	}

	checked, err := session.Engine.ToggleTopping(req.Topping, size)
	if err != nil {
		h.rejectMutation(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topping": req.Topping,
		"size":    size,
		"checked": checked,
		"totals":  totalsBody(session.Engine),
	})
}

//
// --------------------------------------------------
// PUT /sessions/:id/items
// --------------------------------------------------
//

func (h *Handler) SetItemCount(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req struct {
		Size  string `json:"size" binding:"required"`
		Count *int   `json:"count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	size, err := catalog.ParseSize(req.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size: " + req.Size})
		return
	}

	if err := session.Engine.SetItemCount(size, *req.Count); err != nil {
		h.rejectMutation(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"size":   size,
		"count":  *req.Count,
		"totals": totalsBody(session.Engine),
	})
}

//
// --------------------------------------------------
// GET /sessions/:id/totals
// --------------------------------------------------
//

func (h *Handler) Totals(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totalsBody(session.Engine)})
}

//
// --------------------------------------------------
// GET /sessions/:id/quote/:size
// --------------------------------------------------
//

func (h *Handler) Quote(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	size, err := catalog.ParseSize(c.Param("size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size: " + c.Param("size")})
		return
	}

	quote, err := session.Engine.Quote(size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// --------------------------------------------------

func (h *Handler) lookup(c *gin.Context) (*Session, bool) {
	session, err := h.service.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

// rejectMutation maps engine sentinels to status codes. Rejected
// mutations never change state, so nothing needs undoing here.
func (h *Handler) rejectMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidCount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrUnknownTopping):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrInvalidSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func totalsBody(engine *pricing.Engine) gin.H {
	body := gin.H{}
	for size, total := range engine.Totals() {
		body[string(size)] = total
	}
	return body
}
