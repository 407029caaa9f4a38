package routes

import (
	"socis_remeses/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMembers  = "/members"
	PathMandates = "/mandates"
	PathQuotes   = "/quotes"
)

func addMemberRoutes(rg *gin.RouterGroup, memberHandler *handlers.MemberHandler, mandateHandler *handlers.MandateHandler) {
	members := rg.Group(PathMembers)
	{
		members.POST("", memberHandler.CreateMember)
		members.GET("", memberHandler.ListMembers)
		members.GET("/directory", memberHandler.Directory)
		members.GET("/stats", memberHandler.MemberStats)
		members.POST("/sync", memberHandler.SyncDirectory)
		members.GET("/:id", memberHandler.GetMember)
		members.PUT("/:id", memberHandler.UpdateMember)
		members.PATCH("/:id/status", memberHandler.ChangeMemberStatus)
		members.GET("/:id/mandates", mandateHandler.ListMemberMandates)
	}
}

func addMandateRoutes(rg *gin.RouterGroup, h *handlers.MandateHandler) {
	mandates := rg.Group(PathMandates)
	{
		mandates.POST("", h.CreateMandate)
		mandates.GET("/:id", h.GetMandate)
		mandates.PATCH("/:id/activate", h.ActivateMandate)
		mandates.PATCH("/:id/deactivate", h.DeactivateMandate)
		mandates.PATCH("/:id/final", h.MarkFinal)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id/outcome", h.RecordOutcome)
	}
}
