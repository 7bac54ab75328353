package handlers

import (
	"errors"
	"net/http"

	request "reparo_pro/internal/adapter/http/dto/request"
	response "reparo_pro/internal/adapter/http/dto/response"
	"reparo_pro/internal/usecase"
	"reparo_pro/pkg"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the public customer portal. Routes are keyed by the
// portal token only; no staff session is involved.

type PortalHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewPortalHandler(uc usecase.IQuoteUseCase) *PortalHandler {
	return &PortalHandler{usecase: uc}
}

func (h *PortalHandler) GetWorkOrder(c *gin.Context) {
	quote, err := h.usecase.GetByPortalToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PortalFromQuote(quote))
}

func (h *PortalHandler) AddChatMessage(c *gin.Context) {
	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.AddPortalChatMessage(c.Request.Context(), c.Param("token"), payload.Text)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.PortalFromQuote(quote))
}

func (h *PortalHandler) Sign(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.SignByPortalToken(c.Request.Context(), c.Param("token"), payload.Signature)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PortalFromQuote(quote))
}

func mapPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPortalToken):
		return pkg.NewDomainErrorSimple("MISSING_PORTAL_TOKEN", "Portal token is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPortalToken):
		return pkg.NewDomainErrorSimple("INVALID_PORTAL_TOKEN", "Portal token does not match any work order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyChatMessage), errors.Is(err, usecase.ErrEmptySignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChatClosed):
		return pkg.NewDomainErrorSimple("CHAT_CLOSED", "Chat is closed for completed work orders", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
