package shipping

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

const syncLookback = 48 * time.Hour

var syncingOrders sync.Map

type Ingester interface {
	Ingest(ctx context.Context, order *domain.Order) (bool, error)
}

// Sync periodically imports recently created carrier orders into the
// local store so dispatch can pick them up without manual entry.
type Sync struct {
	carrier        CarrierClient
	ingester       Ingester
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func NewSync(carrier CarrierClient, ingester Ingester) *Sync {
	return &Sync{
		carrier:        carrier,
		ingester:       ingester,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Minute * 5,
	}
}

func (s *Sync) Start(ctx context.Context) {
	zap.L().Info("Carrier order sync started")
	go s.run(ctx)
}

func (s *Sync) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping carrier order sync")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.syncOrders(ctx)
		}
	}
}

func (s *Sync) syncOrders(ctx context.Context) {
	orders, err := s.carrier.ListRecentOrders(ctx, time.Now().Add(-syncLookback))
	if err != nil {
		zap.L().Error("Failed to fetch carrier orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := syncingOrders.LoadOrStore(order.OrderID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer syncingOrders.Delete(order.OrderID)
				return s.importOrder(ctx, order)
			})
			if err != nil {
				syncingOrders.Delete(order.OrderID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing carrier orders", zap.Error(err))
	}
}

func (s *Sync) importOrder(ctx context.Context, co CarrierOrder) error {
	order := &domain.Order{
		OrderID:         co.OrderID,
		ShipmentID:      co.ShipmentID,
		TrackingID:      co.AWB,
		DeliveryPartner: co.Courier,
	}
	for _, sku := range co.SKUs {
		order.Items = append(order.Items, domain.OrderItem{SKU: sku, Quantity: 1})
	}

	created, err := s.ingester.Ingest(ctx, order)
	if err != nil {
		return err
	}
	if created {
		zap.L().Info("Imported carrier order",
			zap.String("orderId", co.OrderID),
			zap.String("shipmentId", co.ShipmentID),
		)
	}
	return nil
}
