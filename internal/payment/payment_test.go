package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FaizAhmad0/intWallet/internal/config"
	"github.com/FaizAhmad0/intWallet/pkg/clients"
)

func newGateway(t *testing.T, handler http.Handler) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{
		PaymentAddress:  srv.URL,
		PaymentAPIKey:   "test-key",
		PaymentToken:    "test-token",
		PaymentRedirect: "https://wallet.example.com/verify",
	}
	return New(cfg, clients.NewHTTPClient())
}

func TestCreatePaymentRequest(t *testing.T) {
	t.Run("request created with provider credentials", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/payment-requests/", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
			assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "500.00", req["amount"])
			assert.Equal(t, "Wallet recharge", req["purpose"])
			assert.Equal(t, "Faiz", req["buyer_name"])
			assert.Equal(t, "faiz@example.com", req["email"])
			assert.Equal(t, "https://wallet.example.com/verify", req["redirect_url"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"payment_request": map[string]any{
					"id":      "req-1",
					"longurl": "https://pay.example.com/req-1",
				},
			})
		})
		gateway := newGateway(t, mux)

		pr, err := gateway.CreatePaymentRequest(context.Background(), decimal.NewFromInt(500), Buyer{Name: "Faiz", Email: "faiz@example.com"})
		require.NoError(t, err)
		assert.Equal(t, &PaymentRequest{ID: "req-1", PaymentURL: "https://pay.example.com/req-1"}, pr)
	})

	t.Run("provider rejection surfaces the vendor message", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/payment-requests/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid API credentials"})
		})
		gateway := newGateway(t, mux)

		_, err := gateway.CreatePaymentRequest(context.Background(), decimal.NewFromInt(500), Buyer{})
		var gerr *GatewayError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, "Invalid API credentials", gerr.Message)
	})

	t.Run("success without a payment url is a failure", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/payment-requests/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "payment_request": map[string]any{"id": "req-1"}})
		})
		gateway := newGateway(t, mux)

		_, err := gateway.CreatePaymentRequest(context.Background(), decimal.NewFromInt(500), Buyer{})
		assert.Error(t, err)
	})
}

func TestVerifyPayment(t *testing.T) {
	verifyResponse := func(payments []map[string]any) http.Handler {
		mux := http.NewServeMux()
		mux.HandleFunc("/payment-requests/req-1/", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":         true,
				"payment_request": map[string]any{"payments": payments},
			})
		})
		return mux
	}

	t.Run("settled payment returns the credited amount", func(t *testing.T) {
		gateway := newGateway(t, verifyResponse([]map[string]any{
			{"payment_id": "pay-0", "status": "Failed", "amount": "500.00"},
			{"payment_id": "pay-1", "status": "Credit", "amount": "500.00"},
		}))

		amount, err := gateway.VerifyPayment(context.Background(), "req-1", "pay-1")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(500).Equal(amount))
	})

	t.Run("unsettled payment rejected regardless of redirect outcome", func(t *testing.T) {
		gateway := newGateway(t, verifyResponse([]map[string]any{
			{"payment_id": "pay-1", "status": "Failed", "amount": "500.00"},
		}))

		_, err := gateway.VerifyPayment(context.Background(), "req-1", "pay-1")
		assert.ErrorIs(t, err, ErrPaymentNotSettled)
	})

	t.Run("unknown payment id", func(t *testing.T) {
		gateway := newGateway(t, verifyResponse([]map[string]any{
			{"payment_id": "pay-other", "status": "Credit", "amount": "500.00"},
		}))

		_, err := gateway.VerifyPayment(context.Background(), "req-1", "pay-1")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("unparseable amount", func(t *testing.T) {
		gateway := newGateway(t, verifyResponse([]map[string]any{
			{"payment_id": "pay-1", "status": "Credit", "amount": "five hundred"},
		}))

		_, err := gateway.VerifyPayment(context.Background(), "req-1", "pay-1")
		var gerr *GatewayError
		require.True(t, errors.As(err, &gerr))
	})

	t.Run("unknown payment request", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/payment-requests/req-404/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Payment request not found"})
		})
		gateway := newGateway(t, mux)

		_, err := gateway.VerifyPayment(context.Background(), "req-404", "pay-1")
		var gerr *GatewayError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, "Payment request not found", gerr.Message)
	})
}
