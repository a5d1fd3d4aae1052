package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/jackc/pgx/v5"
)

var (
	queryCreate = `
        INSERT INTO transactions (id, account_id, amount, credit, debit, description, external_payment_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
    `
	queryFindByExternalPaymentID = `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE external_payment_id = $1
    `
	queryFindByAccountID = `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	queryFindAll = `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE ($1::timestamptz IS NULL OR created_at >= $1)
          AND ($2::timestamptz IS NULL OR created_at <= $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	queryCountAll = `
        SELECT count(*)
        FROM transactions
        WHERE ($1::timestamptz IS NULL OR created_at >= $1)
          AND ($2::timestamptz IS NULL OR created_at <= $2)
    `
)

var transactionRowColumns = []string{
	"id", "account_id", "amount", "credit", "debit", "description", "external_payment_id", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func testTransaction() *domain.Transaction {
	return &domain.Transaction{
		ID:                "0f1b8e8a-9b60-4a58-9f51-26f27a2f6f11",
		AccountID:         1,
		Amount:            decimal.NewFromInt(500),
		Credit:            true,
		Description:       "Add Money in wallet",
		ExternalPaymentID: "pay-1",
		CreatedAt:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("ledger entry appended", func(t *testing.T) {
		tx := testTransaction()
		mock.ExpectExec(regexp.QuoteMeta(queryCreate)).
			WithArgs(tx.ID, tx.AccountID, tx.Amount, tx.Credit, tx.Debit,
				tx.Description, tx.ExternalPaymentID, tx.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), tx)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		tx := testTransaction()
		mock.ExpectExec(regexp.QuoteMeta(queryCreate)).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), tx)
		assert.Error(t, err)
	})
}

func TestRepository_FindByExternalPaymentID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("existing payment id returns the entry", func(t *testing.T) {
		want := testTransaction()
		mock.ExpectQuery(regexp.QuoteMeta(queryFindByExternalPaymentID)).
			WithArgs("pay-1").
			WillReturnRows(pgxmock.NewRows(transactionRowColumns).AddRow(
				want.ID, want.AccountID, want.Amount, want.Credit, want.Debit,
				want.Description, want.ExternalPaymentID, want.CreatedAt))

		got, err := repo.FindByExternalPaymentID(context.Background(), "pay-1")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown payment id returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryFindByExternalPaymentID)).
			WithArgs("pay-404").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByExternalPaymentID(context.Background(), "pay-404")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepository_FindByAccountID(t *testing.T) {
	repo, mock := NewMock(t)

	want := testTransaction()
	mock.ExpectQuery(regexp.QuoteMeta(queryFindByAccountID)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(transactionRowColumns).AddRow(
			want.ID, want.AccountID, want.Amount, want.Credit, want.Debit,
			want.Description, want.ExternalPaymentID, want.CreatedAt))

	got, err := repo.FindByAccountID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, *want, got[0])
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("bounded window with total", func(t *testing.T) {
		want := testTransaction()
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(queryFindAll)).
			WithArgs(from, to, 20, 0).
			WillReturnRows(pgxmock.NewRows(transactionRowColumns).AddRow(
				want.ID, want.AccountID, want.Amount, want.Credit, want.Debit,
				want.Description, want.ExternalPaymentID, want.CreatedAt))
		mock.ExpectQuery(regexp.QuoteMeta(queryCountAll)).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		got, total, err := repo.FindAll(context.Background(), from, to, 20, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, total)
	})

	t.Run("zero times bind as NULL", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryFindAll)).
			WithArgs(nil, nil, 20, 0).
			WillReturnRows(pgxmock.NewRows(transactionRowColumns))
		mock.ExpectQuery(regexp.QuoteMeta(queryCountAll)).
			WithArgs(nil, nil).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		got, total, err := repo.FindAll(context.Background(), time.Time{}, time.Time{}, 20, 0)
		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 0, total)
	})
}
