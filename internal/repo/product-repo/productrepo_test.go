package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/jackc/pgx/v5"
)

var queryFindBySKU = `
        SELECT id, sku, name, price, shipping, gst_rate, weight, dimension, hsn
        FROM products
        WHERE sku = $1
    `

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindBySKU(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("existing sku returns the product", func(t *testing.T) {
		want := &domain.Product{
			ID:       1,
			SKU:      "TSHIRT-M",
			Name:     "T-Shirt M",
			Price:    decimal.NewFromInt(250),
			Shipping: decimal.NewFromInt(20),
			GSTRate:  decimal.NewFromInt(5),
			Weight:   decimal.NewFromFloat(0.3),
		}
		mock.ExpectQuery(regexp.QuoteMeta(queryFindBySKU)).
			WithArgs("TSHIRT-M").
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "sku", "name", "price", "shipping", "gst_rate", "weight", "dimension", "hsn",
			}).AddRow(want.ID, want.SKU, want.Name, want.Price, want.Shipping, want.GSTRate,
				want.Weight, want.Dimension, want.HSN))

		got, err := repo.FindBySKU(context.Background(), "TSHIRT-M")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown sku returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryFindBySKU)).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindBySKU(context.Background(), "NOPE")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryFindBySKU)).
			WithArgs("TSHIRT-M").
			WillReturnError(errors.New("database error"))

		_, err := repo.FindBySKU(context.Background(), "TSHIRT-M")
		assert.Error(t, err)
	})
}
