package billingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/events"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

type AccountRepo interface {
	GetByEnrollment(ctx context.Context, enrollment string) (*domain.Account, error)
	GetForUpdate(ctx context.Context, enrollment string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal) error
}

type OrderRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Order, error)
	AddItems(ctx context.Context, orderID int, items []domain.OrderItem) error
	Update(ctx context.Context, order *domain.Order) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
}

type ProductRepo interface {
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
}

type Pricer interface {
	PerSKU(items []domain.OrderItem) (decimal.Decimal, error)
	Flat(orderAmount, shippingAmount decimal.Decimal) (decimal.Decimal, error)
}

type Publisher interface {
	Publish(ctx context.Context, event events.TransactionRecorded) error
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrIncompleteProfile   = errors.New("account profile incomplete: address, pincode and state are required")
	ErrCatalogLookupFailed = errors.New("catalog lookup failed")
	ErrAlreadyPriced       = errors.New("order already priced")
	ErrOrderNotHeld        = errors.New("order is not held for payment")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

const debitDescription = "Deduct while purchasing product"

// Service is the only component allowed to mutate an account balance
// and an order status in the same logical operation. The balance read,
// balance write, transaction insert and status write happen inside one
// database transaction with the account row locked.
type Service struct {
	accountRepo AccountRepo
	orderRepo   OrderRepo
	txRepo      TransactionRepo
	productRepo ProductRepo
	pricer      Pricer
	txManager   pg.TXManager
	publisher   Publisher
}

func New(accountRepo AccountRepo, orderRepo OrderRepo, txRepo TransactionRepo, productRepo ProductRepo, pricer Pricer, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		accountRepo: accountRepo,
		orderRepo:   orderRepo,
		txRepo:      txRepo,
		productRepo: productRepo,
		pricer:      pricer,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// AddSKUs prices the given SKUs onto an unbilled order and charges the
// owning account. A sufficient balance advances the order to its
// funded status with a matching debit entry; otherwise the order is
// held in HMI with no ledger effect. The resulting order is returned
// either way so callers can tell the two outcomes apart. The order is
// addressed by shipment id, or by order id for manually tracked
// orders.
func (s *Service) AddSKUs(ctx context.Context, enrollment, shipmentID string, skus []string) (*domain.Order, error) {
	account, err := s.accountRepo.GetByEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.HasShippingProfile() {
		return nil, ErrIncompleteProfile
	}

	order, err := s.resolve(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if order.FulfillmentMode == domain.FulfillmentCarrier {
		// Carrier orders are priced here exactly once; the AWB may
		// already be assigned, so the guard is on the amount, not the
		// status.
		if order.Priced() {
			return nil, ErrAlreadyPriced
		}
	} else if order.Status != domain.StatusNew {
		// Easyship orders are flat-priced at creation and charged
		// exactly once, from NEW.
		return nil, ErrAlreadyPriced
	}

	items := make([]domain.OrderItem, 0, len(skus))
	for _, sku := range skus {
		product, err := s.productRepo.FindBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: unknown SKU %s", ErrCatalogLookupFailed, sku)
		}
		items = append(items, domain.OrderItem{
			SKU:       product.SKU,
			Name:      product.Name,
			Price:     product.Price,
			Shipping:  product.Shipping,
			GSTRate:   product.GSTRate,
			Quantity:  1,
			Weight:    product.Weight,
			Dimension: product.Dimension,
			HSN:       product.HSN,
		})
	}

	// Easyship orders are flat-priced at creation; carrier orders are
	// priced here, once, from their catalog line items.
	if !order.Priced() {
		final, err := s.pricer.PerSKU(items)
		if err != nil {
			return nil, err
		}
		order.FinalAmount = decimal.NewNullDecimal(final)
	}
	order.AccountID = account.ID

	var recorded *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.AddItems(ctx, order.ID, items); err != nil {
			return err
		}
		recorded, err = s.settle(ctx, enrollment, order)
		return err
	})
	if err != nil {
		zap.L().Error("failed to charge order", zap.Error(err), zap.String("orderID", order.OrderID))
		return nil, err
	}
	order.Items = append(order.Items, items...)

	s.publish(ctx, recorded)
	return order, nil
}

// resolve loads the order to bill. Carrier orders are addressed by
// their shipment id; easyship orders never have one, so the same
// handle falls back to the order id.
func (s *Service) resolve(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByShipmentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		order, err = s.orderRepo.FindByOrderID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// RetryCharge re-evaluates balance sufficiency for an already priced
// HMI order without re-pricing (the "Pay" action).
func (s *Service) RetryCharge(ctx context.Context, enrollment, orderID string) (*domain.Order, error) {
	account, err := s.accountRepo.GetByEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.StatusHMI || !order.Priced() {
		return nil, ErrOrderNotHeld
	}

	var recorded *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		recorded, err = s.settle(ctx, enrollment, order)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to retry charge", zap.Error(err), zap.String("orderID", order.OrderID))
		}
		return nil, err
	}

	s.publish(ctx, recorded)
	return order, nil
}

// settle runs inside an open transaction: locks the account, debits it
// when the balance covers the order's final amount and advances the
// order, or holds the order in HMI. On a retry (already HMI) an
// insufficient balance is an error instead of a second hold.
func (s *Service) settle(ctx context.Context, enrollment string, order *domain.Order) (*domain.Transaction, error) {
	account, err := s.accountRepo.GetForUpdate(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	amount := order.FinalAmount.Decimal
	if account.Balance.LessThan(amount) {
		if order.Status == domain.StatusHMI {
			return nil, ErrInsufficientBalance
		}
		if err := order.Transition(domain.StatusHMI); err != nil {
			return nil, err
		}
		return nil, s.orderRepo.Update(ctx, order)
	}

	tx := &domain.Transaction{
		ID:          uuid.NewString(),
		AccountID:   account.ID,
		Amount:      amount,
		Debit:       true,
		Description: debitDescription,
		CreatedAt:   time.Now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateBalance(ctx, account.ID, account.Balance.Sub(amount)); err != nil {
		return nil, err
	}
	if err := order.Transition(domain.FundedStatus(order.FulfillmentMode)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) publish(ctx context.Context, tx *domain.Transaction) {
	if tx == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.FromTransaction(tx)); err != nil {
		zap.L().Warn("failed to publish transaction event", zap.Error(err), zap.String("transactionID", tx.ID))
	}
}
