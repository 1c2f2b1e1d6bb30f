package handlers

import (
	"log"
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PanditHandler struct {
	usecase usecase.IPanditUseCase
}

func NewPanditHandler(uc usecase.IPanditUseCase) *PanditHandler {
	return &PanditHandler{usecase: uc}
}

func (h *PanditHandler) Apply(c *gin.Context) {
	var req request.PanditApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "pandit", err)
		return
	}
	p, err := h.usecase.Apply(c.Request.Context(), middleware.CurrentPrincipal(c), req.ToApplication())
	if err != nil {
		respondError(c, "pandit", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPandit(p))
}

func (h *PanditHandler) ListApproved(c *gin.Context) {
	pandits, err := h.usecase.ListApproved(c.Request.Context())
	if err != nil {
		respondError(c, "pandit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPandits(pandits))
}

func (h *PanditHandler) GetPandit(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "pandit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPandit(p))
}

func (h *PanditHandler) ListAll(c *gin.Context) {
	pandits, err := h.usecase.ListAll(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "pandit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPandits(pandits))
}

// SetApproval approves or revokes a pandit. Approval promotes the owning user.
func (h *PanditHandler) SetApproval(c *gin.Context) {
	var req request.ApprovePanditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "pandit", err)
		return
	}
	id := c.Param("id")
	requester := middleware.CurrentPrincipal(c)

	p, err := h.usecase.SetApproval(c.Request.Context(), id, *req.Approved, requester)
	if err != nil {
		log.Printf("[pandit][handler] approval failed pandit_id=%s by=%s err=%v", id, requester.UserID, err)
		respondError(c, "pandit", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPandit(p))
}
