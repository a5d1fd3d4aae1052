package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `
        SELECT id, sku, name, price, shipping, gst_rate, weight, dimension, hsn
        FROM products
        WHERE sku = $1
    `
	row := r.db.QueryRow(ctx, query, sku)
	var p domain.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Shipping, &p.GSTRate, &p.Weight, &p.Dimension, &p.HSN)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
