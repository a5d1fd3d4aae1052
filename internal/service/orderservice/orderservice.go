package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

type OrderRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	FindByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]domain.Order, int, error)
	Search(ctx context.Context, term string) ([]domain.Order, error)
	Delete(ctx context.Context, orderID string) (*domain.Order, error)
}

type AccountRepo interface {
	GetByEnrollment(ctx context.Context, enrollment string) (*domain.Account, error)
}

type Pricer interface {
	Flat(orderAmount, shippingAmount decimal.Decimal) (decimal.Decimal, error)
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidStatus      = errors.New("invalid status value")
)

// Service handles every order status change that carries no ledger
// effect, plus order creation and the read surface. All status writes
// go through the domain transition table.
type Service struct {
	orderRepo   OrderRepo
	accountRepo AccountRepo
	pricer      Pricer
}

func New(orderRepo OrderRepo, accountRepo AccountRepo, pricer Pricer) *Service {
	return &Service{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		pricer:      pricer,
	}
}

type CreateEasyShipInput struct {
	Enrollment         string
	OrderID            string
	TrackingID         string
	LastmileTrackingID string
	DeliveryPartner    string
	LastmilePartner    string
	OrderAmount        decimal.Decimal
	ShippingAmount     decimal.Decimal
	Country            string
}

// CreateEasyShipOrder registers a manually tracked order. Flat pricing
// happens here, once; the charge itself runs later through the
// billing path.
func (s *Service) CreateEasyShipOrder(ctx context.Context, in CreateEasyShipInput) (*domain.Order, error) {
	existing, err := s.orderRepo.FindByOrderID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already exists", zap.String("orderID", in.OrderID))
		return nil, ErrOrderAlreadyExists
	}

	final, err := s.pricer.Flat(in.OrderAmount, in.ShippingAmount)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:            in.OrderID,
		Enrollment:         in.Enrollment,
		FulfillmentMode:    domain.FulfillmentEasyShip,
		Status:             domain.StatusNew,
		TrackingID:         in.TrackingID,
		LastmileTrackingID: in.LastmileTrackingID,
		DeliveryPartner:    in.DeliveryPartner,
		LastmilePartner:    in.LastmilePartner,
		FinalAmount:        decimal.NewNullDecimal(final),
		OrderAmount:        in.OrderAmount,
		ShippingAmount:     in.ShippingAmount,
		CreatedAt:          time.Now(),
	}

	account, err := s.accountRepo.GetByEnrollment(ctx, in.Enrollment)
	if err != nil {
		return nil, err
	}
	if account != nil {
		order.AccountID = account.ID
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Ingest stores an order fetched from the carrier, skipping duplicates
// by order id. Used by the background sync.
func (s *Service) Ingest(ctx context.Context, order *domain.Order) (bool, error) {
	existing, err := s.orderRepo.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	order.FulfillmentMode = domain.FulfillmentCarrier
	order.Status = domain.StatusNew
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return false, err
	}
	return true, nil
}

// transition loads an order by order id or shipment id, applies a
// validated status change and persists it.
func (s *Service) transition(ctx context.Context, orderID, shipmentID string, to domain.Status) (*domain.Order, error) {
	order, err := s.resolve(ctx, orderID, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(to); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) resolve(ctx context.Context, orderID, shipmentID string) (*domain.Order, error) {
	var order *domain.Order
	var err error
	switch {
	case orderID != "":
		order, err = s.orderRepo.FindByOrderID(ctx, orderID)
	default:
		order, err = s.orderRepo.FindByShipmentID(ctx, shipmentID)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) Archive(ctx context.Context, orderID, shipmentID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, shipmentID, domain.StatusArchived)
}

// Unarchive reverses an archive; the order returns to HMI so its
// funding state gets re-evaluated before any further movement.
func (s *Service) Unarchive(ctx context.Context, orderID, shipmentID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, shipmentID, domain.StatusHMI)
}

func (s *Service) ReturnAdjust(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, "", domain.StatusRA)
}

func (s *Service) MarkUnavailable(ctx context.Context, shipmentID string) (*domain.Order, error) {
	return s.transition(ctx, "", shipmentID, domain.StatusPNA)
}

func (s *Service) MarkAvailable(ctx context.Context, shipmentID string) (*domain.Order, error) {
	return s.transition(ctx, "", shipmentID, domain.StatusRTD)
}

// Unship reverses a shipped mark back to RTD.
func (s *Service) Unship(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, "", domain.StatusRTD)
}

// MarkStatus is the direct status set used for carrier-confirmed or
// manual SHIPPED/PNA marks. Any other target status is rejected before
// the transition table is even consulted.
func (s *Service) MarkStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	if status != domain.StatusShipped && status != domain.StatusPNA {
		return nil, ErrInvalidStatus
	}
	return s.transition(ctx, orderID, "", status)
}

func (s *Service) List(ctx context.Context, status domain.Status, limit, offset int) ([]domain.Order, int, error) {
	if !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	orders, total, err := s.orderRepo.FindByStatus(ctx, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Order, error) {
	orders, err := s.orderRepo.Search(ctx, term)
	if err != nil {
		zap.L().Error("failed to search orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Delete removes an order permanently. Any ledger effect the order
// already produced stays in place; the warn log keeps the gap visible
// to operators.
func (s *Service) Delete(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.Delete(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Priced() {
		zap.L().Warn("deleted a billed order without reversing its ledger effect",
			zap.String("orderID", order.OrderID),
			zap.String("finalAmount", order.FinalAmount.Decimal.String()))
	}
	return order, nil
}
