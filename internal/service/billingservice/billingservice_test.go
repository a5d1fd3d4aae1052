package billingservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

type mocks struct {
	accountRepo *MockAccountRepo
	orderRepo   *MockOrderRepo
	txRepo      *MockTransactionRepo
	productRepo *MockProductRepo
	pricer      *MockPricer
	txManager   *pg.MockTXManager
	publisher   *MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		accountRepo: NewMockAccountRepo(ctrl),
		orderRepo:   NewMockOrderRepo(ctrl),
		txRepo:      NewMockTransactionRepo(ctrl),
		productRepo: NewMockProductRepo(ctrl),
		pricer:      NewMockPricer(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		publisher:   NewMockPublisher(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.accountRepo, m.orderRepo, m.txRepo, m.productRepo, m.pricer, m.txManager, m.publisher)
	return service, m
}

func profiledAccount(balance float64) *domain.Account {
	return &domain.Account{
		ID:         1,
		Enrollment: "VC10234",
		Name:       "Asha Traders",
		Address:    "14 Market Road",
		Pincode:    "110001",
		State:      "Delhi",
		Balance:    decimal.NewFromFloat(balance),
	}
}

func newCarrierOrder() *domain.Order {
	return &domain.Order{
		ID:              7,
		OrderID:         "ORD-2024-1187",
		ShipmentID:      "482915603",
		FulfillmentMode: domain.FulfillmentCarrier,
		Status:          domain.StatusNew,
	}
}

func tshirt() *domain.Product {
	return &domain.Product{
		SKU:     "SKU-BLK-42",
		Name:    "Black Tee 42",
		Price:   decimal.NewFromInt(250),
		GSTRate: decimal.NewFromInt(20),
	}
}

func TestAddSKUs(t *testing.T) {
	final := decimal.NewFromInt(300)

	tests := []struct {
		name           string
		prepareMock    func(m *mocks)
		expectedStatus domain.Status
		expectedError  error
	}{
		{
			name: "sufficient balance charges and schedules the order",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(newCarrierOrder(), nil)
				m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(tshirt(), nil)
				m.pricer.EXPECT().PerSKU(gomock.Any()).Return(final, nil)
				m.orderRepo.EXPECT().AddItems(gomock.Any(), 7, gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, tx *domain.Transaction) error {
						assert.True(t, tx.Debit)
						assert.True(t, tx.Amount.Equal(final))
						assert.Equal(t, "Deduct while purchasing product", tx.Description)
						return nil
					})
				m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), 1, decimal.NewFromInt(200)).Return(nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, order *domain.Order) error {
						assert.Equal(t, domain.StatusSchedule, order.Status)
						return nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusSchedule,
		},
		{
			name: "insufficient balance holds the order without a ledger entry",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(newCarrierOrder(), nil)
				m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(tshirt(), nil)
				m.pricer.EXPECT().PerSKU(gomock.Any()).Return(final, nil)
				m.orderRepo.EXPECT().AddItems(gomock.Any(), 7, gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, order *domain.Order) error {
						assert.Equal(t, domain.StatusHMI, order.Status)
						return nil
					})
			},
			expectedStatus: domain.StatusHMI,
		},
		{
			name: "incomplete profile rejected before any order read",
			prepareMock: func(m *mocks) {
				bare := &domain.Account{ID: 1, Enrollment: "VC10234", Balance: decimal.NewFromInt(500)}
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(bare, nil)
			},
			expectedError: ErrIncompleteProfile,
		},
		{
			name: "carrier order already priced",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				held := newCarrierOrder()
				held.Status = domain.StatusHMI
				held.FinalAmount = decimal.NewNullDecimal(final)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(held, nil)
			},
			expectedError: ErrAlreadyPriced,
		},
		{
			name: "unknown SKU",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(newCarrierOrder(), nil)
				m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(nil, nil)
			},
			expectedError: ErrCatalogLookupFailed,
		},
		{
			name: "account missing",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "order missing under both handles",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(nil, nil)
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "482915603").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.AddSKUs(context.Background(), "VC10234", "482915603", []string{"SKU-BLK-42"})
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
			assert.Len(t, order.Items, 1)
		})
	}
}

// Easyship orders carry no shipment id; billing addresses them by
// order id and charges the flat price fixed at creation.
func TestAddSKUsKeepsEasyShipPrice(t *testing.T) {
	service, m := NewMock(t)

	flatPriced := decimal.NewFromInt(1260)
	order := &domain.Order{
		ID:              9,
		OrderID:         "ES-2024-0042",
		FulfillmentMode: domain.FulfillmentEasyShip,
		Status:          domain.StatusNew,
		FinalAmount:     decimal.NewNullDecimal(flatPriced),
	}

	m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(2000), nil)
	m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "ES-2024-0042").Return(nil, nil)
	m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ES-2024-0042").Return(order, nil)
	m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(tshirt(), nil)
	// No PerSKU call: the flat price set at creation stands.
	m.orderRepo.EXPECT().AddItems(gomock.Any(), 9, gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(2000), nil)
	m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), 1, decimal.NewFromInt(740)).Return(nil)
	m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := service.AddSKUs(context.Background(), "VC10234", "ES-2024-0042", []string{"SKU-BLK-42"})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRTD, got.Status)
	assert.True(t, got.FinalAmount.Decimal.Equal(flatPriced))
}

// An already charged easyship order stays priced: re-billing it from
// RTD is rejected even though its flat amount was set at creation.
func TestAddSKUsRejectsChargedEasyShipOrder(t *testing.T) {
	service, m := NewMock(t)

	order := &domain.Order{
		ID:              9,
		OrderID:         "ES-2024-0042",
		FulfillmentMode: domain.FulfillmentEasyShip,
		Status:          domain.StatusRTD,
		FinalAmount:     decimal.NewNullDecimal(decimal.NewFromInt(1260)),
	}

	m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(2000), nil)
	m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "ES-2024-0042").Return(nil, nil)
	m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ES-2024-0042").Return(order, nil)

	_, err := service.AddSKUs(context.Background(), "VC10234", "ES-2024-0042", []string{"SKU-BLK-42"})
	assert.ErrorIs(t, err, ErrAlreadyPriced)
}

// Carrier dispatch assigns the AWB before billing, so an unpriced
// order that is already In Progress must still be chargeable.
func TestAddSKUsChargesAfterAWB(t *testing.T) {
	final := decimal.NewFromInt(300)

	awbOrder := func() *domain.Order {
		order := newCarrierOrder()
		order.Status = domain.StatusInProgress
		order.TrackingID = "AWB123456"
		return order
	}

	tests := []struct {
		name           string
		prepareMock    func(m *mocks)
		expectedStatus domain.Status
	}{
		{
			name: "sufficient balance charges to Schedule",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(awbOrder(), nil)
				m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(tshirt(), nil)
				m.pricer.EXPECT().PerSKU(gomock.Any()).Return(final, nil)
				m.orderRepo.EXPECT().AddItems(gomock.Any(), 7, gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), 1, decimal.NewFromInt(200)).Return(nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusSchedule,
		},
		{
			name: "insufficient balance holds in HMI",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
				m.orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "482915603").Return(awbOrder(), nil)
				m.productRepo.EXPECT().FindBySKU(gomock.Any(), "SKU-BLK-42").Return(tshirt(), nil)
				m.pricer.EXPECT().PerSKU(gomock.Any()).Return(final, nil)
				m.orderRepo.EXPECT().AddItems(gomock.Any(), 7, gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusHMI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.AddSKUs(context.Background(), "VC10234", "482915603", []string{"SKU-BLK-42"})
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
		})
	}
}

func TestRetryCharge(t *testing.T) {
	final := decimal.NewFromInt(300)

	heldOrder := func(mode domain.FulfillmentMode) *domain.Order {
		return &domain.Order{
			ID:              7,
			OrderID:         "ORD-2024-1187",
			FulfillmentMode: mode,
			Status:          domain.StatusHMI,
			FinalAmount:     decimal.NewNullDecimal(final),
		}
	}

	tests := []struct {
		name           string
		prepareMock    func(m *mocks)
		expectedStatus domain.Status
		expectedError  error
	}{
		{
			name: "topped-up easyship order charges to RTD",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ORD-2024-1187").Return(heldOrder(domain.FulfillmentEasyShip), nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), 1, decimal.NewFromInt(200)).Return(nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusRTD,
		},
		{
			name: "carrier order charges to Schedule",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ORD-2024-1187").Return(heldOrder(domain.FulfillmentCarrier), nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), 1, decimal.NewFromInt(200)).Return(nil)
				m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.StatusSchedule,
		},
		{
			name: "still insufficient is an error, not a second hold",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ORD-2024-1187").Return(heldOrder(domain.FulfillmentEasyShip), nil)
				m.accountRepo.EXPECT().GetForUpdate(gomock.Any(), "VC10234").Return(profiledAccount(100), nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "order not held",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				funded := heldOrder(domain.FulfillmentEasyShip)
				funded.Status = domain.StatusRTD
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ORD-2024-1187").Return(funded, nil)
			},
			expectedError: ErrOrderNotHeld,
		},
		{
			name: "held but never priced",
			prepareMock: func(m *mocks) {
				m.accountRepo.EXPECT().GetByEnrollment(gomock.Any(), "VC10234").Return(profiledAccount(500), nil)
				unpriced := heldOrder(domain.FulfillmentEasyShip)
				unpriced.FinalAmount = decimal.NullDecimal{}
				m.orderRepo.EXPECT().FindByOrderID(gomock.Any(), "ORD-2024-1187").Return(unpriced, nil)
			},
			expectedError: ErrOrderNotHeld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.RetryCharge(context.Background(), "VC10234", "ORD-2024-1187")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
		})
	}
}
