package handlers

import (
	"net/http"

	"pandit_booking/internal/adapter/http/dto/request"
	"pandit_booking/internal/adapter/http/dto/response"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	usecase usecase.IConsultationUseCase
}

func NewConsultationHandler(uc usecase.IConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{usecase: uc}
}

func (h *ConsultationHandler) Create(c *gin.Context) {
	var req request.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "consultation", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.CurrentPrincipal(c), req.ToInput())
	if err != nil {
		respondError(c, "consultation", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromConsultation(created))
}

func (h *ConsultationHandler) ListForPandit(c *gin.Context) {
	list, err := h.usecase.ListForPandit(c.Request.Context(), c.Param("id"), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, "consultation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromConsultations(list))
}
