package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

const accountColumns = `id, enrollment, name, brand_name, email, manager, address, pincode, state, country, gst, balance, created_at`

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

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Enrollment, &a.Name, &a.BrandName, &a.Email, &a.Manager,
		&a.Address, &a.Pincode, &a.State, &a.Country, &a.GST, &a.Balance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByEnrollment(ctx context.Context, enrollment string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE enrollment = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, enrollment))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account by id", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate locks the account row for the remainder of the current
// transaction. Must be called inside TXManager.Begin; this is what
// serializes concurrent charges against the same account.
func (r *Repository) GetForUpdate(ctx context.Context, enrollment string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE enrollment = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, enrollment))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal) error {
	query := `
        UPDATE accounts
        SET balance = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, accountID)
	if err != nil {
		zap.L().Error("failed to update account balance", zap.Error(err))
		return err
	}
	return nil
}
