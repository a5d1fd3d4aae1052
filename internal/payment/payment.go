package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/config"
	"github.com/FaizAhmad0/intWallet/pkg/clients"
)

// paymentStatusCredited is the gateway's status for a settled payment.
const paymentStatusCredited = "Credit"

var (
	ErrPaymentNotFound   = errors.New("payment not found on gateway")
	ErrPaymentNotSettled = errors.New("payment is not settled")
)

// GatewayError carries the vendor response for operator visibility.
type GatewayError struct {
	Op      string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %s", e.Op, e.Message)
}

type Buyer struct {
	Name  string
	Email string
}

type PaymentRequest struct {
	ID         string
	PaymentURL string
}

type GatewayI interface {
	CreatePaymentRequest(ctx context.Context, amount decimal.Decimal, buyer Buyer) (*PaymentRequest, error)
	VerifyPayment(ctx context.Context, requestID, paymentID string) (decimal.Decimal, error)
}

// Gateway is an adapter over the hosted payment provider. Verification
// always re-checks the provider: the caller-supplied success flag from
// the redirect is never trusted.
type Gateway struct {
	baseURL     string
	apiKey      string
	authToken   string
	redirectURL string
	http        clients.HTTPClientI
}

func New(cfg *config.Config, httpClient clients.HTTPClientI) *Gateway {
	return &Gateway{
		baseURL:     cfg.PaymentAddress,
		apiKey:      cfg.PaymentAPIKey,
		authToken:   cfg.PaymentToken,
		redirectURL: cfg.PaymentRedirect,
		http:        httpClient,
	}
}

func (g *Gateway) headers() http.Header {
	return http.Header{
		"Content-Type": []string{"application/json"},
		"X-Api-Key":    []string{g.apiKey},
		"X-Auth-Token": []string{g.authToken},
	}
}

func (g *Gateway) CreatePaymentRequest(ctx context.Context, amount decimal.Decimal, buyer Buyer) (*PaymentRequest, error) {
	body, _ := json.Marshal(map[string]any{
		"amount":       amount.StringFixed(2),
		"purpose":      "Wallet recharge",
		"buyer_name":   buyer.Name,
		"email":        buyer.Email,
		"redirect_url": g.redirectURL,
	})

	status, respBody, _, err := g.http.Post(g.baseURL+"/payment-requests/", g.headers(), body)
	if err != nil {
		return nil, &GatewayError{Op: "create payment request", Message: err.Error()}
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return nil, &GatewayError{Op: "create payment request", Message: vendorMessage(respBody)}
	}

	var resp struct {
		Success        bool `json:"success"`
		PaymentRequest struct {
			ID      string `json:"id"`
			LongURL string `json:"longurl"`
		} `json:"payment_request"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &GatewayError{Op: "create payment request", Message: err.Error()}
	}
	if !resp.Success || resp.PaymentRequest.LongURL == "" {
		return nil, &GatewayError{Op: "create payment request", Message: vendorMessage(respBody)}
	}

	return &PaymentRequest{
		ID:         resp.PaymentRequest.ID,
		PaymentURL: resp.PaymentRequest.LongURL,
	}, nil
}

// VerifyPayment looks the payment up on the gateway and returns the
// credited amount only when the gateway reports it settled.
func (g *Gateway) VerifyPayment(ctx context.Context, requestID, paymentID string) (decimal.Decimal, error) {
	status, respBody, _, err := g.http.Get(g.baseURL+"/payment-requests/"+requestID+"/", g.headers())
	if err != nil {
		return decimal.Zero, &GatewayError{Op: "verify payment", Message: err.Error()}
	}
	if status != http.StatusOK {
		return decimal.Zero, &GatewayError{Op: "verify payment", Message: vendorMessage(respBody)}
	}

	var resp struct {
		Success        bool `json:"success"`
		PaymentRequest struct {
			Payments []struct {
				PaymentID string `json:"payment_id"`
				Status    string `json:"status"`
				Amount    string `json:"amount"`
			} `json:"payments"`
		} `json:"payment_request"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return decimal.Zero, &GatewayError{Op: "verify payment", Message: err.Error()}
	}
	if !resp.Success {
		return decimal.Zero, &GatewayError{Op: "verify payment", Message: vendorMessage(respBody)}
	}

	for _, p := range resp.PaymentRequest.Payments {
		if p.PaymentID != paymentID {
			continue
		}
		if p.Status != paymentStatusCredited {
			return decimal.Zero, fmt.Errorf("%w: gateway status %q", ErrPaymentNotSettled, p.Status)
		}
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return decimal.Zero, &GatewayError{Op: "verify payment", Message: "unparseable amount " + p.Amount}
		}
		return amount, nil
	}
	return decimal.Zero, ErrPaymentNotFound
}

func vendorMessage(body []byte) string {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	return string(body)
}
