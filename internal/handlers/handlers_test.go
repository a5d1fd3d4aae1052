package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/FaizAhmad0/intWallet/docs"
	"github.com/FaizAhmad0/intWallet/internal/payment"
	"github.com/FaizAhmad0/intWallet/internal/repo"
	"github.com/FaizAhmad0/intWallet/internal/service"
	"github.com/FaizAhmad0/intWallet/internal/shipping"
	"github.com/FaizAhmad0/intWallet/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := service.New(&repo.Repositories{}, nil, nil)
	shippingService := shipping.NewService(nil, nil)
	gateway := payment.NewMockGatewayI(ctrl)

	h := New(services, shippingService, gateway)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockOrderHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().AddSKU(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().AssignAWB(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Unship(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ReturnAdjust(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CreateEasyShip(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().AddBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().AddMoney(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		OrderHandler:  mockOrderHandler,
		WalletHandler: mockWalletHandler,
		AdminHandler:  mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	exp := time.Now().Add(time.Hour)
	adminToken, err := jwtService.GenerateJWT(1, "AZ1001", auth.RoleAdmin, exp)
	assert.NoError(t, err)
	userToken, err := jwtService.GenerateJWT(2, "AZ1002", auth.RoleUser, exp)
	assert.NoError(t, err)
	dispatchToken, err := jwtService.GenerateJWT(3, "AZ1003", auth.RoleDispatch, exp)
	assert.NoError(t, err)
	accountantToken, err := jwtService.GenerateJWT(4, "AZ1004", auth.RoleAccountant, exp)
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/api/orders/", "", http.StatusUnauthorized},
		{"GET", "/api/orders/", userToken, http.StatusOK},
		{"POST", "/api/orders/add-sku", adminToken, http.StatusOK},
		{"POST", "/api/orders/add-sku", userToken, http.StatusForbidden},
		{"POST", "/api/orders/pay", userToken, http.StatusOK},
		{"POST", "/api/orders/assign-awb", dispatchToken, http.StatusOK},
		{"POST", "/api/orders/assign-awb", accountantToken, http.StatusForbidden},
		{"POST", "/api/orders/return-adjust", accountantToken, http.StatusOK},
		{"POST", "/api/orders/unship", adminToken, http.StatusOK},
		{"POST", "/api/orders/unship", dispatchToken, http.StatusForbidden},
		{"POST", "/api/easyshiporders/", adminToken, http.StatusOK},
		{"GET", "/api/wallet/balance", userToken, http.StatusOK},
		{"GET", "/api/wallet/balance", adminToken, http.StatusForbidden},
		{"POST", "/api/wallet/add-balance", "", http.StatusUnauthorized},
		{"POST", "/api/admin/add-money", accountantToken, http.StatusOK},
		{"DELETE", "/api/admin/orders/ORD-1", adminToken, http.StatusOK},
		{"DELETE", "/api/admin/orders/ORD-1", accountantToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
