package handlers

import (
	"net/http"
	"strings"

	request "socis_remeses/internal/adapter/http/dto/request"
	response "socis_remeses/internal/adapter/http/dto/response"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes (quotes de soci).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteRequest true "Quote"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	q, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary  List pending quotes of a period, or all quotes of a member
// @Tags     quotes
// @Produce  json
// @Param    period    query string false "YYYY-MM"
// @Param    member_id query string false "Member id"
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	period := strings.TrimSpace(c.Query("period"))
	memberID := strings.TrimSpace(c.Query("member_id"))

	var (
		qs  []entities.Quote
		err error
	)
	switch {
	case memberID != "":
		qs, err = h.usecase.ListByMemberID(c.Request.Context(), memberID)
	case period != "":
		qs, err = h.usecase.ListPendingByPeriod(c.Request.Context(), period)
	default:
		writeError(c, errInvalidRequest.WithField("period"))
		return
	}
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

// RecordOutcome godoc
// @Summary  Record the bank outcome of a submitted quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string                      true "Quote id"
// @Param    outcome body request.QuoteOutcomeRequest true "collected|returned"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/outcome [patch]
func (h *QuoteHandler) RecordOutcome(c *gin.Context) {
	var payload request.QuoteOutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithField("status"))
		return
	}
	q, err := h.usecase.RecordOutcome(c.Request.Context(), c.Param("id"), entities.QuoteState(payload.Status))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
