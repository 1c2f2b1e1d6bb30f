package handlers

import (
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *AdminHandler) CreateVirtualSession(c *gin.Context) {
	var req request.CreateVirtualSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "admin", err)
		return
	}
	s, err := h.usecase.CreateVirtualSession(c.Request.Context(), middleware.CurrentPrincipal(c), req.ToEntity())
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusCreated, response.VirtualSessionResponse(s))
}

func (h *AdminHandler) ListVirtualSessions(c *gin.Context) {
	sessions, err := h.usecase.ListActiveVirtualSessions(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVirtualSessions(sessions))
}
