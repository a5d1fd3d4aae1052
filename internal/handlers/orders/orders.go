package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/dto"
	"github.com/FaizAhmad0/intWallet/internal/service/billingservice"
	"github.com/FaizAhmad0/intWallet/internal/service/orderservice"
	"github.com/FaizAhmad0/intWallet/internal/shipping"
	"github.com/FaizAhmad0/intWallet/pkg/utils"
	"github.com/FaizAhmad0/intWallet/pkg/validate"
)

type OrderService interface {
	CreateEasyShipOrder(ctx context.Context, in orderservice.CreateEasyShipInput) (*domain.Order, error)
	Archive(ctx context.Context, orderID, shipmentID string) (*domain.Order, error)
	Unarchive(ctx context.Context, orderID, shipmentID string) (*domain.Order, error)
	ReturnAdjust(ctx context.Context, orderID string) (*domain.Order, error)
	MarkUnavailable(ctx context.Context, shipmentID string) (*domain.Order, error)
	MarkAvailable(ctx context.Context, shipmentID string) (*domain.Order, error)
	Unship(ctx context.Context, orderID string) (*domain.Order, error)
	MarkStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
	List(ctx context.Context, status domain.Status, limit, offset int) ([]domain.Order, int, error)
	Search(ctx context.Context, term string) ([]domain.Order, error)
}

type BillingService interface {
	AddSKUs(ctx context.Context, enrollment, shipmentID string, skus []string) (*domain.Order, error)
	RetryCharge(ctx context.Context, enrollment, orderID string) (*domain.Order, error)
}

type ShippingService interface {
	AssignAWB(ctx context.Context, shipmentIDs []string) ([]domain.Order, error)
	SchedulePickup(ctx context.Context, shipmentID string) (*domain.Order, error)
	GenerateLabels(ctx context.Context, shipmentIDs []string) ([]byte, error)
}

type OrderHandler struct {
	orderService    OrderService
	billingService  BillingService
	shippingService ShippingService
}

func New(orderService OrderService, billingService BillingService, shippingService ShippingService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		billingService:  billingService,
		shippingService: shippingService,
	}
}

// AddSKU godoc
//
//	@Summary		Bill SKUs onto an order
//	@Description	Attach one or more catalog SKUs to an unbilled order and charge the wallet. Carrier orders are addressed by shipment id (before or after AWB assignment); easyship orders by order id. An order left on hold for insufficient funds is returned with status HMI.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddSKURequestDTO	true	"SKU billing payload"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order after billing"
//	@Failure		400		{object}	utils.Response			"Validation or incomplete profile"
//	@Failure		404		{object}	utils.Response			"Order, account or SKU not found"
//	@Failure		409		{object}	utils.Response			"Order already priced"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/add-sku [post]
func (h *OrderHandler) AddSKU(w http.ResponseWriter, r *http.Request) {
	var req dto.AddSKURequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.billingService.AddSKUs(r.Context(), req.Enrollment, req.ShipmentID, req.SKUs)
	if err != nil {
		respondBillingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Pay godoc
//
//	@Summary		Retry the wallet charge for a held order
//	@Description	Re-run the charge for an order parked in HMI after a wallet top-up.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayOrderRequestDTO	true	"Charge retry payload"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order after the charge"
//	@Failure		400		{object}	utils.Response			"Order is not on hold"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Order or account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PayOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.billingService.RetryCharge(r.Context(), req.Enrollment, req.OrderID)
	if err != nil {
		respondBillingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Archive godoc
//
//	@Summary	Archive an order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OrderRefRequestDTO	true	"Order reference"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/archive [put]
func (h *OrderHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transitionByRef(w, r, h.orderService.Archive)
}

// Unarchive godoc
//
//	@Summary	Restore an archived order onto the money-hold queue
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OrderRefRequestDTO	true	"Order reference"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/unarchive [post]
func (h *OrderHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.transitionByRef(w, r, h.orderService.Unarchive)
}

func (h *OrderHandler) transitionByRef(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orderID, shipmentID string) (*domain.Order, error)) {
	var req dto.OrderRefRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == "" && req.ShipmentID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "orderId or shipmentId is required")
		return
	}

	order, err := fn(r.Context(), req.OrderID, req.ShipmentID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// UpdateStatus godoc
//
//	@Summary		Mark an order shipped or unavailable
//	@Description	Direct status mark for dispatch. Only SHIPPED and PNA are accepted here; every other change goes through its dedicated route.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string						true	"Order id"
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Unsupported status value"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Illegal status transition"
//	@Router			/api/orders/{orderID}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.MarkStatus(r.Context(), orderID, domain.Status(req.Status))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Unship godoc
//
//	@Summary	Pull a shipped order back to ready-to-dispatch
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OrderIDRequestDTO	true	"Order id"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/unship [post]
func (h *OrderHandler) Unship(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.Unship(r.Context(), req.OrderID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// ReturnAdjust godoc
//
//	@Summary	Park a held order for return adjustment
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.OrderIDRequestDTO	true	"Order id"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/return-adjust [post]
func (h *OrderHandler) ReturnAdjust(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.ReturnAdjust(r.Context(), req.OrderID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// MarkUnavailable godoc
//
//	@Summary	Mark a shipment's product as not available
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ShipmentIDRequestDTO	true	"Shipment id"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/mark-unavailable [post]
func (h *OrderHandler) MarkUnavailable(w http.ResponseWriter, r *http.Request) {
	h.markByShipment(w, r, h.orderService.MarkUnavailable)
}

// MarkAvailable godoc
//
//	@Summary	Return a PNA shipment to ready-to-dispatch
//	@Tags		Orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ShipmentIDRequestDTO	true	"Shipment id"
//	@Success	200		{object}	dto.OrderResponseDTO
//	@Failure	404		{object}	utils.Response	"Order not found"
//	@Failure	409		{object}	utils.Response	"Illegal status transition"
//	@Router		/api/orders/mark-available [post]
func (h *OrderHandler) MarkAvailable(w http.ResponseWriter, r *http.Request) {
	h.markByShipment(w, r, h.orderService.MarkAvailable)
}

func (h *OrderHandler) markByShipment(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, shipmentID string) (*domain.Order, error)) {
	var req dto.ShipmentIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := fn(r.Context(), req.ShipmentID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// AssignAWB godoc
//
//	@Summary		Assign waybills to new orders
//	@Description	Request a carrier waybill for every NEW order among the given shipment ids and move them to In Progress.
//	@Tags			Dispatch
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ShipmentIDsRequestDTO	true	"Shipment ids"
//	@Success		200		{array}		dto.OrderResponseDTO		"Orders with waybills assigned"
//	@Failure		400		{object}	utils.Response				"No eligible orders"
//	@Failure		502		{object}	utils.Response				"Carrier error"
//	@Router			/api/orders/assign-awb [post]
func (h *OrderHandler) AssignAWB(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipmentIDsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.shippingService.AssignAWB(r.Context(), req.ShipmentIDs)
	if err != nil {
		respondShippingError(w, err)
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SchedulePickup godoc
//
//	@Summary		Schedule a carrier pickup
//	@Description	Generate the manifest and queue a pickup for one shipment, then mark the order Received. A pickup already queued at the carrier counts as done.
//	@Tags			Dispatch
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ShipmentIDRequestDTO	true	"Shipment id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Shipment not ready for pickup"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		502		{object}	utils.Response	"Carrier error"
//	@Router			/api/orders/schedule-pickup [post]
func (h *OrderHandler) SchedulePickup(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipmentIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.shippingService.SchedulePickup(r.Context(), req.ShipmentID)
	if err != nil {
		respondShippingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GenerateLabel godoc
//
//	@Summary		Download shipping labels
//	@Description	Generate a label per shipment and stream one zip archive of the PDFs. Shipments whose label fails are skipped.
//	@Tags			Dispatch
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		application/zip
//	@Param			request	body	dto.ShipmentIDsRequestDTO	true	"Shipment ids"
//	@Success		200		{file}	file						"Zip archive of label PDFs"
//	@Failure		400		{object}	utils.Response			"No labels could be generated"
//	@Failure		502		{object}	utils.Response			"Carrier error"
//	@Router			/api/orders/generate-label [post]
func (h *OrderHandler) GenerateLabel(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipmentIDsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	archive, err := h.shippingService.GenerateLabels(r.Context(), req.ShipmentIDs)
	if err != nil {
		respondShippingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="labels.zip"`)
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}

// List godoc
//
//	@Summary	List orders by status
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	true	"Order status"
//	@Param		page	query		int		false	"Page number"	default(1)
//	@Param		limit	query		int		false	"Page size"		default(20)
//	@Success	200		{object}	dto.OrderListResponseDTO
//	@Failure	400		{object}	utils.Response	"Unknown status value"
//	@Router		/api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(r.URL.Query().Get("status"))
	page, limit := pagination(r, 20)

	orders, total, err := h.orderService.List(r.Context(), status, limit, (page-1)*limit)
	if err != nil {
		if errors.Is(err, orderservice.ErrInvalidStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.OrderListResponseDTO{
		Orders: make([]dto.OrderResponseDTO, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i := range orders {
		response.Orders[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Search godoc
//
//	@Summary	Search orders by order id, tracking id or enrollment
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		search	query		string	true	"Search term"
//	@Success	200		{array}		dto.OrderResponseDTO
//	@Failure	400		{object}	utils.Response	"Missing search term"
//	@Router		/api/orders/search [get]
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	if term == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "search term is required")
		return
	}

	orders, err := h.orderService.Search(r.Context(), term)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateEasyShip godoc
//
//	@Summary		Register a manually tracked order
//	@Description	Create an easyship order. The final amount is flat-priced at creation; the wallet charge runs later through the billing path.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEasyShipOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		409		{object}	utils.Response	"Order already exists"
//	@Router			/api/easyshiporders [post]
func (h *OrderHandler) CreateEasyShip(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEasyShipOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.CreateEasyShipOrder(r.Context(), orderservice.CreateEasyShipInput{
		Enrollment:         req.Enrollment,
		OrderID:            req.OrderID,
		TrackingID:         req.TrackingID,
		LastmileTrackingID: req.LastmileTrackingID,
		DeliveryPartner:    req.DeliveryPartner,
		LastmilePartner:    req.LastmilePartner,
		OrderAmount:        decimal.NewFromFloat(req.OrderAmount),
		ShippingAmount:     decimal.NewFromFloat(req.ShippingAmount),
		Country:            req.Country,
	})
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

func pagination(r *http.Request, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

func respondOrderError(w http.ResponseWriter, err error) {
	var illegal *domain.IllegalTransitionError
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &illegal):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondBillingError(w http.ResponseWriter, err error) {
	var illegal *domain.IllegalTransitionError
	switch {
	case errors.Is(err, billingservice.ErrAccountNotFound),
		errors.Is(err, billingservice.ErrOrderNotFound),
		errors.Is(err, billingservice.ErrCatalogLookupFailed):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, billingservice.ErrIncompleteProfile),
		errors.Is(err, billingservice.ErrOrderNotHeld):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, billingservice.ErrAlreadyPriced):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, billingservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.As(err, &illegal):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondShippingError(w http.ResponseWriter, err error) {
	var gateway *shipping.GatewayError
	var illegal *domain.IllegalTransitionError
	switch {
	case errors.Is(err, shipping.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shipping.ErrNoEligibleOrders),
		errors.Is(err, shipping.ErrNotReadyForPickup),
		errors.Is(err, shipping.ErrNoLabels):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &gateway):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &illegal):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		OrderID:            order.OrderID,
		Enrollment:         order.Enrollment,
		FulfillmentMode:    string(order.FulfillmentMode),
		Status:             string(order.Status),
		ShipmentID:         order.ShipmentID,
		TrackingID:         order.TrackingID,
		LastmileTrackingID: order.LastmileTrackingID,
		DeliveryPartner:    order.DeliveryPartner,
		LastmilePartner:    order.LastmilePartner,
		OrderAmount:        order.OrderAmount.InexactFloat64(),
		ShippingAmount:     order.ShippingAmount.InexactFloat64(),
		CreatedAt:          order.CreatedAt,
	}
	if order.FinalAmount.Valid {
		final := order.FinalAmount.Decimal.InexactFloat64()
		resp.FinalAmount = &final
	}
	for _, it := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemDTO{
			SKU:      it.SKU,
			Name:     it.Name,
			Price:    it.Price.InexactFloat64(),
			Shipping: it.Shipping.InexactFloat64(),
			GSTRate:  it.GSTRate.InexactFloat64(),
			Quantity: it.Quantity,
		})
	}
	return resp
}
