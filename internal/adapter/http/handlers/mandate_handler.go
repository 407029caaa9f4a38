package handlers

import (
	"context"
	"net/http"

	request "socis_remeses/internal/adapter/http/dto/request"
	response "socis_remeses/internal/adapter/http/dto/response"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MandateHandler handles HTTP requests for SEPA mandates.

type MandateHandler struct {
	usecase usecase.IMandateUseCase
}

func NewMandateHandler(uc usecase.IMandateUseCase) *MandateHandler {
	return &MandateHandler{usecase: uc}
}

// CreateMandate godoc
// @Summary  Register a signed mandate
// @Tags     mandates
// @Accept   json
// @Produce  json
// @Param    mandate body request.MandateRequest true "Mandate"
// @Success  201 {object} response.MandateResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /mandates [post]
func (h *MandateHandler) CreateMandate(c *gin.Context) {
	var payload request.MandateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, errInvalidRequest.WithField("sign_date"))
		return
	}
	m, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMandate(m))
}

func (h *MandateHandler) GetMandate(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMandate(m))
}

func (h *MandateHandler) ListMemberMandates(c *gin.Context) {
	ms, err := h.usecase.ListByMemberID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMandates(ms))
}

func (h *MandateHandler) ActivateMandate(c *gin.Context) {
	h.patchMandate(c, h.usecase.Activate)
}

func (h *MandateHandler) DeactivateMandate(c *gin.Context) {
	h.patchMandate(c, h.usecase.Deactivate)
}

// MarkFinal flags the next collection on the mandate as its last (FNAL).
func (h *MandateHandler) MarkFinal(c *gin.Context) {
	h.patchMandate(c, h.usecase.MarkFinal)
}

func (h *MandateHandler) patchMandate(c *gin.Context, update func(ctx context.Context, id string) (entities.Mandate, error)) {
	m, err := update(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMandate(m))
}
