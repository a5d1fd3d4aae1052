package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/dto"
	"github.com/FaizAhmad0/intWallet/internal/payment"
	"github.com/FaizAhmad0/intWallet/internal/service/walletservice"
	"github.com/FaizAhmad0/intWallet/pkg/auth"
	"github.com/FaizAhmad0/intWallet/pkg/utils"
	"github.com/FaizAhmad0/intWallet/pkg/validate"
)

const rechargeDescription = "Add Money in wallet"

type Service interface {
	GetBalance(ctx context.Context, enrollment string) (*domain.Account, error)
	GetTransactions(ctx context.Context, enrollment string) ([]domain.Transaction, error)
	Credit(ctx context.Context, enrollment string, amount decimal.Decimal, externalPaymentID, description string) (bool, error)
}

type WalletHandler struct {
	walletService Service
	gateway       payment.GatewayI
}

func New(walletService Service, gateway payment.GatewayI) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		gateway:       gateway,
	}
}

// AddBalance godoc
//
//	@Summary		Start a wallet top-up
//	@Description	Create a hosted payment request for the authenticated account and return the payment URL. Nothing is credited until the payment is verified.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddBalanceRequestDTO	true	"Top-up amount"
//	@Success		200		{object}	dto.AddBalanceResponseDTO	"Hosted payment URL"
//	@Failure		400		{object}	utils.Response				"Validation error"
//	@Failure		502		{object}	utils.Response				"Payment gateway error"
//	@Router			/api/wallet/add-balance [post]
func (h *WalletHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	enrollment := r.Context().Value(auth.EnrollmentKey).(string)

	var req dto.AddBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.walletService.GetBalance(r.Context(), enrollment)
	if err != nil {
		respondWalletError(w, err)
		return
	}

	pr, err := h.gateway.CreatePaymentRequest(r.Context(), decimal.NewFromFloat(req.Amount), payment.Buyer{
		Name:  account.Name,
		Email: account.Email,
	})
	if err != nil {
		respondGatewayError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AddBalanceResponseDTO{
		PaymentRequestID: pr.ID,
		PaymentURL:       pr.PaymentURL,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify a payment and credit the wallet
//	@Description	Re-check the payment on the gateway and credit the settled amount. Verifying the same payment twice credits once; the repeat returns applied=false.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO		true	"Payment reference"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO	"Credit outcome and new balance"
//	@Failure		400		{object}	utils.Response					"Payment not settled"
//	@Failure		404		{object}	utils.Response					"Payment not found on gateway"
//	@Failure		502		{object}	utils.Response					"Payment gateway error"
//	@Router			/api/wallet/verify-payment [post]
func (h *WalletHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	enrollment := r.Context().Value(auth.EnrollmentKey).(string)

	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := h.gateway.VerifyPayment(r.Context(), req.PaymentRequestID, req.PaymentID)
	if err != nil {
		respondGatewayError(w, err)
		return
	}

	applied, err := h.walletService.Credit(r.Context(), enrollment, amount, req.PaymentID, rechargeDescription)
	if err != nil {
		respondWalletError(w, err)
		return
	}

	account, err := h.walletService.GetBalance(r.Context(), enrollment)
	if err != nil {
		respondWalletError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{
		Applied: applied,
		Amount:  amount.InexactFloat64(),
		Balance: account.Balance.InexactFloat64(),
	})
}

// GetBalance godoc
//
//	@Summary	Get the wallet balance
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	enrollment := r.Context().Value(auth.EnrollmentKey).(string)

	account, err := h.walletService.GetBalance(r.Context(), enrollment)
	if err != nil {
		respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Enrollment: account.Enrollment,
		Balance:    account.Balance.InexactFloat64(),
	})
}

// GetTransactions godoc
//
//	@Summary	Get the wallet transaction history
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	enrollment := r.Context().Value(auth.EnrollmentKey).(string)

	transactions, err := h.walletService.GetTransactions(r.Context(), enrollment)
	if err != nil {
		respondWalletError(w, err)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:          tx.ID,
			Enrollment:  enrollment,
			Amount:      tx.Amount.InexactFloat64(),
			Credit:      tx.Credit,
			Debit:       tx.Debit,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondGatewayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, payment.ErrPaymentNotSettled):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	}
}
