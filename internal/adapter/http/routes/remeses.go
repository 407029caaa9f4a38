package routes

import (
	"socis_remeses/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRemittances = "/remittances"
	PathReceipts    = "/receipts"
)

func addRemittanceRoutes(rg *gin.RouterGroup, h *handlers.RemittanceHandler) {
	remittances := rg.Group(PathRemittances)
	{
		remittances.POST("", h.BuildRemittance)
		remittances.GET("", h.ListRemittances)
		remittances.POST("/verify", h.VerifyDocument)
		remittances.GET("/:id", h.GetRemittance)
		remittances.DELETE("/:id", h.CancelRemittance)
		remittances.POST("/:id/rebuild", h.RebuildRemittance)
		remittances.POST("/:id/generate", h.GenerateRemittance)
		remittances.POST("/:id/submit", h.SubmitRemittance)
		remittances.GET("/:id/xml", h.DownloadXML)
		remittances.GET("/:id/export.xlsx", h.ExportXLSX)
		remittances.GET("/:id/export.pdf", h.ExportPDF)
	}
}

func addReceiptRoutes(rg *gin.RouterGroup, h *handlers.ReceiptHandler) {
	rg.GET(PathReceipts, h.ListReceipts)
}
