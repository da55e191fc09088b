package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/promo"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// ValidatePromoCodeRequest asks the backend for its authoritative quote
type ValidatePromoCodeRequest struct {
	Code      string          `json:"code"`
	Amount    decimal.Decimal `json:"amount"`
	ProgramID uuid.UUID       `json:"program_id"`
}

// GetPromoCode fetches a promo code record so the evaluator can produce
// an advisory quote without a round trip per keystroke. A 404 is not an
// error: it returns (nil, nil) and the evaluator reports "not found".
func (c *PlatformClient) GetPromoCode(ctx context.Context, code string) (*types.PromoCode, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("promo-codes/%s", promo.NormalizeCode(code)),
		c.apiKeyOptions()...,
	)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	var promoCode types.PromoCode
	if err := c.httpClient.ProcessJSONResponse(resp, &promoCode); err != nil {
		return nil, fmt.Errorf("failed to process promo code response: %w", err)
	}

	return &promoCode, nil
}

// ValidatePromoCode returns the backend's authoritative quote for a
// code/amount/program triple. The client-side evaluation is advisory
// only; this figure wins whenever the two disagree.
func (c *PlatformClient) ValidatePromoCode(ctx context.Context, req ValidatePromoCodeRequest) (*types.PriceQuote, error) {
	req.Code = promo.NormalizeCode(req.Code)

	resp, err := c.httpClient.Post(ctx, "promo-codes/validate", req, c.apiKeyOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to validate promo code: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var quote types.PriceQuote
	if err := c.httpClient.ProcessJSONResponse(resp, &quote); err != nil {
		return nil, fmt.Errorf("failed to process promo validation response: %w", err)
	}

	return &quote, nil
}
