package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/client/platform"
	"github.com/tadreeb/tadreeb-api/internal/logger"
	"github.com/tadreeb/tadreeb-api/internal/promo"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// QuoteHandler evaluates promo codes for display
type QuoteHandler struct {
	common *CommonServices
}

// NewQuoteHandler creates a new QuoteHandler instance
func NewQuoteHandler(common *CommonServices) *QuoteHandler {
	return &QuoteHandler{common: common}
}

// QuoteRequest asks for a discount quote on a purchase
type QuoteRequest struct {
	Code      string          `json:"code" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	ProgramID uuid.UUID       `json:"program_id" binding:"required"`
}

// QuoteResponse carries the advisory quote and, when the backend
// answered, its authoritative one. The UI must display ServerQuote when
// present; Quote is a fallback for offline display only.
type QuoteResponse struct {
	Quote       types.PriceQuote  `json:"quote"`
	ServerQuote *types.PriceQuote `json:"server_quote,omitempty"`
}

// CreateQuote evaluates a promo code against a purchase amount
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid quote request", err)
		return
	}

	record, err := h.common.api.GetPromoCode(c.Request.Context(), req.Code)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to look up promo code", err)
		return
	}

	quote := promo.Evaluate(record, req.Amount, req.ProgramID, h.common.now())

	response := QuoteResponse{Quote: quote}

	// The backend's figure is authoritative; fetch it but tolerate
	// failure, the advisory quote still renders.
	serverQuote, err := h.common.api.ValidatePromoCode(c.Request.Context(), platform.ValidatePromoCodeRequest{
		Code:      req.Code,
		Amount:    req.Amount,
		ProgramID: req.ProgramID,
	})
	if err != nil {
		logger.Warn("server-side promo validation unavailable",
			zap.String("code", promo.NormalizeCode(req.Code)),
			zap.Error(err))
	} else {
		response.ServerQuote = serverQuote
	}

	sendSuccess(c, http.StatusOK, response)
}
