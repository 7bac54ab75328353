package routes

import (
	"reparo_pro/internal/adapter/http/handlers"
	"reparo_pro/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth   = "/auth"
	PathQuotes = "/quotes"
	PathPortal = "/portal"
	PathUsers  = "/users"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	quoteHandler *handlers.QuoteHandler,
	partHandler *handlers.PartHandler,
	portalHandler *handlers.PortalHandler,
	userHandler *handlers.UserHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	// Rotas publicas do portal do cliente, chaveadas pelo token.
	portal := rg.Group(PathPortal)
	{
		portal.GET("/:token", portalHandler.GetWorkOrder)
		portal.POST("/:token/chat", portalHandler.AddChatMessage)
		portal.POST("/:token/signature", portalHandler.Sign)
	}

	quotes := rg.Group(PathQuotes)
	quotes.Use(middleware.Authenticate())
	{
		quotes.POST("", quoteHandler.Save)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.DELETE("/:id", quoteHandler.Delete)

		quotes.PATCH("/:id/approval", quoteHandler.SetApprovalStatus)
		quotes.POST("/:id/work-order", quoteHandler.GenerateWorkOrder)
		quotes.POST("/:id/signature", quoteHandler.Sign)
		quotes.PATCH("/:id/terms", quoteHandler.SetTerms)
		quotes.PATCH("/:id/service-status", quoteHandler.SetServiceStatus)

		quotes.POST("/:id/timeline", quoteHandler.AddTimelineEvent)
		quotes.POST("/:id/chat", quoteHandler.AddChatMessage)

		quotes.POST("/:id/parts/:part_id/toggle", partHandler.TogglePart)
		quotes.PATCH("/:id/parts/:part_id/services", partHandler.SetServiceSelected)
		quotes.PATCH("/:id/parts/:part_id/services/:service_id/hours", partHandler.UpdateServiceHours)
		quotes.POST("/:id/parts/:part_id/items", partHandler.AddLineItem)
		quotes.PUT("/:id/parts/:part_id/items/:item_id", partHandler.UpdateLineItem)
		quotes.DELETE("/:id/parts/:part_id/items/:item_id", partHandler.RemoveLineItem)

		quotes.POST("/:id/suggestion", partHandler.SuggestRepairs)
	}

	users := rg.Group(PathUsers)
	users.Use(middleware.Authenticate())
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.PATCH("/:id/status", userHandler.SetStatus)
	}
}
