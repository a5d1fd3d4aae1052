package shipping

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoEligibleOrders  = errors.New("no eligible orders for the given shipment ids")
	ErrNotReadyForPickup = errors.New("shipment is not ready for pickup")
	ErrNoLabels          = errors.New("no labels could be generated")
)

type OrderRepo interface {
	FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Order, error)
	FindByShipmentIDs(ctx context.Context, shipmentIDs []string, status domain.Status) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

// Service drives the bulk dispatch operations against the carrier.
type Service struct {
	carrier   CarrierClient
	orderRepo OrderRepo
}

func NewService(carrier CarrierClient, orderRepo OrderRepo) *Service {
	return &Service{carrier: carrier, orderRepo: orderRepo}
}

// AssignAWB requests a waybill for every NEW order among the given
// shipment ids and moves the assigned ones to In Progress. Per-shipment
// carrier failures are logged and skipped.
func (s *Service) AssignAWB(ctx context.Context, shipmentIDs []string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByShipmentIDs(ctx, shipmentIDs, domain.StatusNew)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoEligibleOrders
	}

	var updated []domain.Order
	var firstErr error
	for i := range orders {
		order := &orders[i]

		awb, courier, err := s.carrier.AssignAWB(ctx, order.ShipmentID)
		if err != nil {
			zap.L().Warn("AWB assignment failed",
				zap.String("shipmentId", order.ShipmentID), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		order.TrackingID = awb
		order.DeliveryPartner = courier
		if err := order.Transition(domain.StatusInProgress); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return nil, err
		}
		updated = append(updated, *order)
	}

	if len(updated) == 0 {
		return nil, firstErr
	}
	return updated, nil
}

// SchedulePickup generates the manifest and queues a pickup for one
// shipment, then marks the order Received. A shipment already queued at
// the carrier counts as success; any other carrier state is rejected.
func (s *Service) SchedulePickup(ctx context.Context, shipmentID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	shipment, err := s.carrier.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	switch shipment.Status {
	case shipmentReadyToShip:
		if err := s.carrier.GenerateManifest(ctx, shipmentID); err != nil {
			return nil, err
		}
		if err := s.carrier.SchedulePickup(ctx, shipmentID); err != nil {
			return nil, err
		}
	case shipmentPickupQueued:
		// Pickup already queued on a previous attempt.
	default:
		return nil, fmt.Errorf("%w: carrier status %d", ErrNotReadyForPickup, shipment.Status)
	}

	if err := order.Transition(domain.StatusReceived); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GenerateLabels fetches a shipping label per shipment and bundles the
// PDFs into one zip archive. Shipments whose label fails are logged and
// left out; each labelled order moves to RTD when its status allows it.
func (s *Service) GenerateLabels(ctx context.Context, shipmentIDs []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	var bundled int
	for _, shipmentID := range shipmentIDs {
		data, err := s.fetchLabel(ctx, shipmentID)
		if err != nil {
			zap.L().Warn("label generation failed",
				zap.String("shipmentId", shipmentID), zap.Error(err))
			continue
		}

		f, err := zw.Create(shipmentID + ".pdf")
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(data); err != nil {
			return nil, err
		}
		bundled++

		if err := s.markReadyToDispatch(ctx, shipmentID); err != nil {
			zap.L().Warn("failed to mark order ready to dispatch",
				zap.String("shipmentId", shipmentID), zap.Error(err))
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	if bundled == 0 {
		return nil, ErrNoLabels
	}
	return buf.Bytes(), nil
}

func (s *Service) fetchLabel(ctx context.Context, shipmentID string) ([]byte, error) {
	labelURL, err := s.carrier.GenerateLabel(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return s.carrier.Download(ctx, labelURL)
}

func (s *Service) markReadyToDispatch(ctx context.Context, shipmentID string) error {
	order, err := s.orderRepo.FindByShipmentID(ctx, shipmentID)
	if err != nil {
		return err
	}
	if order == nil || order.Status == domain.StatusRTD {
		return nil
	}
	if !domain.CanTransition(order.Status, domain.StatusRTD) {
		return nil
	}
	if err := order.Transition(domain.StatusRTD); err != nil {
		return err
	}
	return s.orderRepo.Update(ctx, order)
}
