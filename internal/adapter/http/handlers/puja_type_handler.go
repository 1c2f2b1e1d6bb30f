package handlers

import (
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PujaTypeHandler struct {
	usecase usecase.IPujaTypeUseCase
}

func NewPujaTypeHandler(uc usecase.IPujaTypeUseCase) *PujaTypeHandler {
	return &PujaTypeHandler{usecase: uc}
}

func (h *PujaTypeHandler) List(c *gin.Context) {
	pujas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "puja", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPujaTypes(pujas))
}

func (h *PujaTypeHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "puja", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPujaType(p))
}

func (h *PujaTypeHandler) Create(c *gin.Context) {
	var req request.CreatePujaTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "puja", err)
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), middleware.CurrentPrincipal(c), req.ToEntity())
	if err != nil {
		respondError(c, "puja", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPujaType(p))
}

func (h *PujaTypeHandler) Update(c *gin.Context) {
	var req request.UpdatePujaTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "puja", err)
		return
	}
	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.CurrentPrincipal(c), req.ToUpdate())
	if err != nil {
		respondError(c, "puja", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPujaType(p))
}
