package handlers

import (
	"net/http"

	response "socis_remeses/internal/adapter/http/dto/response"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler serves the receipts (rebuts) listing.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// ListReceipts godoc
// @Summary  List receipts
// @Tags     receipts
// @Produce  json
// @Param    remittance_id query string false "Remittance id"
// @Param    status        query string false "pending|submitted|collected|returned"
// @Param    search        query string false "Member name or reference fragment"
// @Success  200 {array} response.ReceiptResponse
// @Router   /receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.usecase.List(c.Request.Context(), usecase.ReceiptFilter{
		RemittanceID: c.Query("remittance_id"),
		Status:       entities.QuoteState(c.Query("status")),
		Search:       c.Query("search"),
	})
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceipts(receipts))
}
