package handlers

import (
	"errors"
	"net/http"

	request "reparo_pro/internal/adapter/http/dto/request"
	response "reparo_pro/internal/adapter/http/dto/response"
	"reparo_pro/internal/adapter/http/middleware"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/domain/registry"
	"reparo_pro/internal/usecase"
	"reparo_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPartPayload = pkg.NewDomainErrorSimple("INVALID_PART_INPUT", "Invalid damaged part payload", http.StatusBadRequest)

// PartHandler handles the damaged-part registry routes of one quote.

type PartHandler struct {
	usecase usecase.IDamagedPartUseCase
}

func NewPartHandler(uc usecase.IDamagedPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

func (h *PartHandler) TogglePart(c *gin.Context) {
	quote, err := h.usecase.TogglePart(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("part_id"))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *PartHandler) SetServiceSelected(c *gin.Context) {
	var payload request.ServiceSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Selected == nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetServiceSelected(c.Request.Context(), middleware.ActorFrom(c),
		c.Param("id"), c.Param("part_id"), payload.ServiceName, *payload.Selected)
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *PartHandler) UpdateServiceHours(c *gin.Context) {
	var payload request.ServiceHoursRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.LaborHours == nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateServiceHours(c.Request.Context(), middleware.ActorFrom(c),
		c.Param("id"), c.Param("part_id"), c.Param("service_id"), *payload.LaborHours)
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *PartHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AddLineItem(c.Request.Context(), middleware.ActorFrom(c),
		c.Param("id"), c.Param("part_id"), registry.LineItemKind(payload.Kind), entities.LineItem{
			Name:     payload.Name,
			Quantity: payload.Quantity,
			UnitCost: payload.UnitCost,
		})
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *PartHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateLineItem(c.Request.Context(), middleware.ActorFrom(c),
		c.Param("id"), c.Param("part_id"), registry.LineItemKind(payload.Kind), entities.LineItem{
			ID:       c.Param("item_id"),
			Name:     payload.Name,
			Quantity: payload.Quantity,
			UnitCost: payload.UnitCost,
		})
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *PartHandler) RemoveLineItem(c *gin.Context) {
	kind := registry.LineItemKind(c.Query("kind"))

	quote, err := h.usecase.RemoveLineItem(c.Request.Context(), middleware.ActorFrom(c),
		c.Param("id"), c.Param("part_id"), kind, c.Param("item_id"))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *PartHandler) SuggestRepairs(c *gin.Context) {
	var payload request.SuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	quote, suggestion, err := h.usecase.SuggestRepairs(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Description)
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote":      response.FromQuote(quote),
		"suggestion": suggestion,
	})
}

func mapPartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, registry.ErrInvalidLineItem), errors.Is(err, usecase.ErrEmptyDamageDescription):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
	case errors.Is(err, registry.ErrUnknownPart), errors.Is(err, registry.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_ENTRY", "Part or service not in catalog", http.StatusBadRequest)
	case errors.Is(err, registry.ErrPartNotDamaged),
		errors.Is(err, registry.ErrServiceNotFound),
		errors.Is(err, registry.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("PART_ENTRY_NOT_FOUND", "Damaged part entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller role not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSuggestionUnavailable):
		return pkg.NewDomainErrorSimple("SUGGESTION_UNAVAILABLE", "AI suggestions are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
