package transactionrepo

import (
	"context"
	"errors"
	"time"

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

// Create appends a ledger entry. Entries are never updated or deleted.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, account_id, amount, credit, debit, description, external_payment_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
    `
	_, err := r.db.Exec(ctx, query, tx.ID, tx.AccountID, tx.Amount, tx.Credit, tx.Debit,
		tx.Description, tx.ExternalPaymentID, tx.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByExternalPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	query := `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE external_payment_id = $1
    `
	row := r.db.QueryRow(ctx, query, paymentID)
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.Credit, &tx.Debit,
		&tx.Description, &tx.ExternalPaymentID, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find transaction by payment id", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindAll returns a paginated slice of the global ledger, optionally
// bounded by creation time, together with the total row count.
func (r *Repository) FindAll(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	query := `
        SELECT id, account_id, amount, credit, debit, description, COALESCE(external_payment_id, ''), created_at
        FROM transactions
        WHERE ($1::timestamptz IS NULL OR created_at >= $1)
          AND ($2::timestamptz IS NULL OR created_at <= $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	var fromArg, toArg any
	if !from.IsZero() {
		fromArg = from
	}
	if !to.IsZero() {
		toArg = to
	}

	rows, err := r.db.Query(ctx, query, fromArg, toArg, limit, offset)
	if err != nil {
		zap.L().Error("failed to get all transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `
        SELECT count(*)
        FROM transactions
        WHERE ($1::timestamptz IS NULL OR created_at >= $1)
          AND ($2::timestamptz IS NULL OR created_at <= $2)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, fromArg, toArg).Scan(&total); err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.Credit, &tx.Debit,
			&tx.Description, &tx.ExternalPaymentID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
