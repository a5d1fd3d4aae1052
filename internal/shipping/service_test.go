package shipping

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCarrierClient, *MockOrderRepo) {
	ctrl := gomock.NewController(t)
	carrier := NewMockCarrierClient(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	service := NewService(carrier, orderRepo)
	return service, carrier, orderRepo
}

func TestAssignAWB(t *testing.T) {
	t.Run("new orders receive waybills and move to In Progress", func(t *testing.T) {
		service, carrier, orderRepo := NewMock(t)

		orders := []domain.Order{
			{OrderID: "ORD-1", ShipmentID: "101", Status: domain.StatusNew},
			{OrderID: "ORD-2", ShipmentID: "102", Status: domain.StatusNew},
		}
		orderRepo.EXPECT().FindByShipmentIDs(gomock.Any(), []string{"101", "102"}, domain.StatusNew).Return(orders, nil)
		carrier.EXPECT().AssignAWB(gomock.Any(), "101").Return("AWB101", "Delhivery", nil)
		carrier.EXPECT().AssignAWB(gomock.Any(), "102").Return("AWB102", "Bluedart", nil)
		orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		updated, err := service.AssignAWB(context.Background(), []string{"101", "102"})
		assert.NoError(t, err)
		assert.Len(t, updated, 2)
		assert.Equal(t, "AWB101", updated[0].TrackingID)
		assert.Equal(t, "Delhivery", updated[0].DeliveryPartner)
		assert.Equal(t, domain.StatusInProgress, updated[0].Status)
	})

	t.Run("per-shipment carrier failure skipped", func(t *testing.T) {
		service, carrier, orderRepo := NewMock(t)

		orders := []domain.Order{
			{OrderID: "ORD-1", ShipmentID: "101", Status: domain.StatusNew},
			{OrderID: "ORD-2", ShipmentID: "102", Status: domain.StatusNew},
		}
		orderRepo.EXPECT().FindByShipmentIDs(gomock.Any(), gomock.Any(), domain.StatusNew).Return(orders, nil)
		carrier.EXPECT().AssignAWB(gomock.Any(), "101").Return("", "", &GatewayError{Op: "assign awb", Message: "no courier serviceable"})
		carrier.EXPECT().AssignAWB(gomock.Any(), "102").Return("AWB102", "Bluedart", nil)
		orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := service.AssignAWB(context.Background(), []string{"101", "102"})
		assert.NoError(t, err)
		assert.Len(t, updated, 1)
		assert.Equal(t, "ORD-2", updated[0].OrderID)
	})

	t.Run("no eligible orders", func(t *testing.T) {
		service, _, orderRepo := NewMock(t)
		orderRepo.EXPECT().FindByShipmentIDs(gomock.Any(), gomock.Any(), domain.StatusNew).Return(nil, nil)

		_, err := service.AssignAWB(context.Background(), []string{"101"})
		assert.ErrorIs(t, err, ErrNoEligibleOrders)
	})

	t.Run("all assignments failing surfaces the carrier error", func(t *testing.T) {
		service, carrier, orderRepo := NewMock(t)

		orders := []domain.Order{{OrderID: "ORD-1", ShipmentID: "101", Status: domain.StatusNew}}
		orderRepo.EXPECT().FindByShipmentIDs(gomock.Any(), gomock.Any(), domain.StatusNew).Return(orders, nil)
		carrier.EXPECT().AssignAWB(gomock.Any(), "101").Return("", "", &GatewayError{Op: "assign awb", Message: "no courier serviceable"})

		_, err := service.AssignAWB(context.Background(), []string{"101"})
		var gateway *GatewayError
		assert.True(t, errors.As(err, &gateway))
	})
}

func TestSchedulePickup(t *testing.T) {
	tests := []struct {
		name           string
		orderStatus    domain.Status
		prepareCarrier func(carrier *MockCarrierClient)
		expectUpdate   bool
		expectedStatus domain.Status
		expectedError  error
	}{
		{
			name:        "ready shipment gets manifest and pickup",
			orderStatus: domain.StatusSchedule,
			prepareCarrier: func(carrier *MockCarrierClient) {
				carrier.EXPECT().GetShipment(gomock.Any(), "101").Return(&Shipment{ID: 101, Status: shipmentReadyToShip}, nil)
				carrier.EXPECT().GenerateManifest(gomock.Any(), "101").Return(nil)
				carrier.EXPECT().SchedulePickup(gomock.Any(), "101").Return(nil)
			},
			expectUpdate:   true,
			expectedStatus: domain.StatusReceived,
		},
		{
			name:        "pickup already queued counts as success",
			orderStatus: domain.StatusSchedule,
			prepareCarrier: func(carrier *MockCarrierClient) {
				carrier.EXPECT().GetShipment(gomock.Any(), "101").Return(&Shipment{ID: 101, Status: shipmentPickupQueued}, nil)
			},
			expectUpdate:   true,
			expectedStatus: domain.StatusReceived,
		},
		{
			name:        "any other carrier state rejected",
			orderStatus: domain.StatusSchedule,
			prepareCarrier: func(carrier *MockCarrierClient) {
				carrier.EXPECT().GetShipment(gomock.Any(), "101").Return(&Shipment{ID: 101, Status: 6}, nil)
			},
			expectedError: ErrNotReadyForPickup,
		},
		{
			name:        "carrier failure leaves order status untouched",
			orderStatus: domain.StatusSchedule,
			prepareCarrier: func(carrier *MockCarrierClient) {
				carrier.EXPECT().GetShipment(gomock.Any(), "101").Return(&Shipment{ID: 101, Status: shipmentReadyToShip}, nil)
				carrier.EXPECT().GenerateManifest(gomock.Any(), "101").Return(&GatewayError{Op: "generate manifest", Message: "carrier unavailable"})
			},
			expectedError: &GatewayError{Op: "generate manifest", Message: "carrier unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, carrier, orderRepo := NewMock(t)

			order := &domain.Order{OrderID: "ORD-1", ShipmentID: "101", Status: tt.orderStatus}
			orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "101").Return(order, nil)
			tt.prepareCarrier(carrier)
			if tt.expectUpdate {
				orderRepo.EXPECT().Update(gomock.Any(), order).Return(nil)
			}

			got, err := service.SchedulePickup(context.Background(), "101")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.orderStatus, order.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, got.Status)
		})
	}
}

func TestSchedulePickupOrderMissing(t *testing.T) {
	service, _, orderRepo := NewMock(t)
	orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "404").Return(nil, nil)

	_, err := service.SchedulePickup(context.Background(), "404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func zipNames(t *testing.T, archive []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	assert.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestGenerateLabels(t *testing.T) {
	t.Run("bundle contains only successful shipments", func(t *testing.T) {
		service, carrier, orderRepo := NewMock(t)

		carrier.EXPECT().GenerateLabel(gomock.Any(), "101").Return("https://cdn/label-101.pdf", nil)
		carrier.EXPECT().Download(gomock.Any(), "https://cdn/label-101.pdf").Return([]byte("pdf-101"), nil)
		carrier.EXPECT().GenerateLabel(gomock.Any(), "102").Return("", &GatewayError{Op: "generate label", Message: "label not ready"})

		order := &domain.Order{OrderID: "ORD-1", ShipmentID: "101", Status: domain.StatusHMI}
		orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "101").Return(order, nil)
		orderRepo.EXPECT().Update(gomock.Any(), order).Return(nil)

		archive, err := service.GenerateLabels(context.Background(), []string{"101", "102"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"101.pdf"}, zipNames(t, archive))
		assert.Equal(t, domain.StatusRTD, order.Status)
	})

	t.Run("label content round-trips through the archive", func(t *testing.T) {
		service, carrier, orderRepo := NewMock(t)

		carrier.EXPECT().GenerateLabel(gomock.Any(), "101").Return("https://cdn/label-101.pdf", nil)
		carrier.EXPECT().Download(gomock.Any(), "https://cdn/label-101.pdf").Return([]byte("pdf-101"), nil)
		orderRepo.EXPECT().FindByShipmentID(gomock.Any(), "101").Return(&domain.Order{ShipmentID: "101", Status: domain.StatusRTD}, nil)

		archive, err := service.GenerateLabels(context.Background(), []string{"101"})
		assert.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		assert.NoError(t, err)
		rc, err := zr.File[0].Open()
		assert.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, []byte("pdf-101"), content)
	})

	t.Run("all labels failing is an error", func(t *testing.T) {
		service, carrier, _ := NewMock(t)
		carrier.EXPECT().GenerateLabel(gomock.Any(), "101").Return("", &GatewayError{Op: "generate label", Message: "label not ready"})

		_, err := service.GenerateLabels(context.Background(), []string{"101"})
		assert.ErrorIs(t, err, ErrNoLabels)
	})
}
