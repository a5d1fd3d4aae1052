package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

const orderColumns = `id, order_id, COALESCE(account_id, 0), enrollment, fulfillment_mode, status, shipment_id,
        tracking_id, lastmile_tracking_id, delivery_partner, lastmile_partner,
        final_amount, order_amount, shipping_amount, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderID, &o.AccountID, &o.Enrollment, &o.FulfillmentMode, &o.Status,
		&o.ShipmentID, &o.TrackingID, &o.LastmileTrackingID, &o.DeliveryPartner, &o.LastmilePartner,
		&o.FinalAmount, &o.OrderAmount, &o.ShippingAmount, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE shipment_id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, shipmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by shipment", zap.Error(err))
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) loadItems(ctx context.Context, order *domain.Order) error {
	query := `
        SELECT id, order_id, sku, name, price, shipping, gst_rate, quantity, weight, dimension, hsn
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		zap.L().Error("can't load order items", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		err := rows.Scan(&it.ID, &it.OrderID, &it.SKU, &it.Name, &it.Price, &it.Shipping,
			&it.GSTRate, &it.Quantity, &it.Weight, &it.Dimension, &it.HSN)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return err
		}
		order.Items = append(order.Items, it)
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (order_id, account_id, enrollment, fulfillment_mode, status, shipment_id,
            tracking_id, lastmile_tracking_id, delivery_partner, lastmile_partner,
            final_amount, order_amount, shipping_amount, created_at, updated_at)
        VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.OrderID, order.AccountID, order.Enrollment,
			order.FulfillmentMode, order.Status, order.ShipmentID, order.TrackingID,
			order.LastmileTrackingID, order.DeliveryPartner, order.LastmilePartner,
			order.FinalAmount, order.OrderAmount, order.ShippingAmount, order.CreatedAt)
		if err := row.Scan(&order.ID); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return r.insertItems(ctx, order.ID, order.Items)
	})
	if err != nil {
		return err
	}
	return nil
}

// Update persists every mutable order field. Status values reaching
// here have already passed the transition engine.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET account_id = NULLIF($1, 0), status = $2, tracking_id = $3, lastmile_tracking_id = $4,
            delivery_partner = $5, lastmile_partner = $6, final_amount = $7, updated_at = now()
        WHERE id = $8
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.AccountID, order.Status, order.TrackingID,
			order.LastmileTrackingID, order.DeliveryPartner, order.LastmilePartner,
			order.FinalAmount, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) AddItems(ctx context.Context, orderID int, items []domain.OrderItem) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.insertItems(ctx, orderID, items)
	})
}

func (r *Repository) insertItems(ctx context.Context, orderID int, items []domain.OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, sku, name, price, shipping, gst_rate, quantity, weight, dimension, hsn)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	for _, it := range items {
		_, err := r.db.Exec(ctx, query, orderID, it.SKU, it.Name, it.Price, it.Shipping,
			it.GSTRate, it.Quantity, it.Weight, it.Dimension, it.HSN)
		if err != nil {
			zap.L().Error("can't save order item", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]domain.Order, int, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't get orders by status", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE status = $1`, status).Scan(&total); err != nil {
		zap.L().Error("can't count orders by status", zap.Error(err))
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *Repository) Search(ctx context.Context, term string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_id ILIKE '%' || $1 || '%'
           OR tracking_id ILIKE '%' || $1 || '%'
           OR enrollment ILIKE '%' || $1 || '%'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		zap.L().Error("can't search orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// FindByShipmentIDs returns orders matching the given shipment ids and
// status, preserving no particular order.
func (r *Repository) FindByShipmentIDs(ctx context.Context, shipmentIDs []string, status domain.Status) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE shipment_id = ANY($1) AND status = $2
    `
	rows, err := r.db.Query(ctx, query, shipmentIDs, status)
	if err != nil {
		zap.L().Error("can't get orders by shipment ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) Delete(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
        DELETE FROM orders
        WHERE order_id = $1
        RETURNING ` + orderColumns + `
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't delete order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
