package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/dto"
	"github.com/FaizAhmad0/intWallet/internal/service/orderservice"
	"github.com/FaizAhmad0/intWallet/internal/service/walletservice"
	"github.com/FaizAhmad0/intWallet/pkg/utils"
	"github.com/FaizAhmad0/intWallet/pkg/validate"
)

const dateLayout = "2006-01-02"

type WalletService interface {
	ManualAdjust(ctx context.Context, enrollment string, amount decimal.Decimal, credit bool, description string) error
	ListTransactions(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error)
}

type OrderService interface {
	Delete(ctx context.Context, orderID string) (*domain.Order, error)
}

type AdminHandler struct {
	walletService WalletService
	orderService  OrderService
}

func New(walletService WalletService, orderService OrderService) *AdminHandler {
	return &AdminHandler{
		walletService: walletService,
		orderService:  orderService,
	}
}

// AddMoney godoc
//
//	@Summary	Manually credit an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AdjustBalanceRequestDTO	true	"Adjustment payload"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Validation error"
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/add-money [post]
func (h *AdminHandler) AddMoney(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, true)
}

// DeductMoney godoc
//
//	@Summary	Manually debit an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AdjustBalanceRequestDTO	true	"Adjustment payload"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Validation error"
//	@Failure	402		{object}	utils.Response	"Insufficient balance"
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/deduct-money [post]
func (h *AdminHandler) DeductMoney(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, false)
}

func (h *AdminHandler) adjust(w http.ResponseWriter, r *http.Request, credit bool) {
	var req dto.AdjustBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.walletService.ManualAdjust(r.Context(), req.Enrollment, decimal.NewFromFloat(req.Amount), credit, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "balance adjusted"})
}

// ListTransactions godoc
//
//	@Summary	List all wallet transactions
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		limit	query		int		false	"Page size"		default(20)
//	@Param		from	query		string	false	"Start date (YYYY-MM-DD)"
//	@Param		to		query		string	false	"End date (YYYY-MM-DD), inclusive"
//	@Success	200		{object}	dto.TransactionListResponseDTO
//	@Failure	400		{object}	utils.Response	"Unparseable date"
//	@Router		/api/admin/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	from, to, err := dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, total, err := h.walletService.ListTransactions(r.Context(), from, to, limit, (page-1)*limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.TransactionListResponseDTO{
		Transactions: make([]dto.TransactionResponseDTO, len(transactions)),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}
	for i, tx := range transactions {
		response.Transactions[i] = dto.TransactionResponseDTO{
			ID:          tx.ID,
			Amount:      tx.Amount.InexactFloat64(),
			Credit:      tx.Credit,
			Debit:       tx.Debit,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func dateRange(r *http.Request) (from, to time.Time, err error) {
	to = time.Now()
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, errors.New("to must be formatted as YYYY-MM-DD")
		}
		to = to.AddDate(0, 0, 1)
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return from, to, errors.New("from must be formatted as YYYY-MM-DD")
		}
	}
	return from, to, nil
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Hard delete. Wallet charges already taken for the order are not reversed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Order id"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/admin/orders/{orderID} [delete]
func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	if _, err := h.orderService.Delete(r.Context(), orderID); err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "order deleted"})
}
