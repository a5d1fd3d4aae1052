package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/pg"
	"github.com/jackc/pgx/v5"
)

var (
	queryGetByEnrollment = `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE enrollment = $1
    `
	queryGetForUpdate = `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE enrollment = $1
        FOR UPDATE
    `
	queryUpdateBalance = `
        UPDATE accounts
        SET balance = $1
        WHERE id = $2
    `
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func accountRows(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "enrollment", "name", "brand_name", "email", "manager",
		"address", "pincode", "state", "country", "gst", "balance", "created_at",
	}).AddRow(a.ID, a.Enrollment, a.Name, a.BrandName, a.Email, a.Manager,
		a.Address, a.Pincode, a.State, a.Country, a.GST, a.Balance, a.CreatedAt)
}

func TestRepository_GetByEnrollment(t *testing.T) {
	repo, mock, _ := NewMock(t)

	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	account := &domain.Account{
		ID:         1,
		Enrollment: "AZ1001",
		Name:       "Faiz Ahmad",
		BrandName:  "AcmeTees",
		Email:      "faiz@example.com",
		Manager:    "ops",
		Address:    "14 MG Road",
		Pincode:    "560001",
		State:      "Karnataka",
		Country:    "India",
		GST:        "29ABCDE1234F1Z5",
		Balance:    decimal.NewFromInt(500),
		CreatedAt:  createdAt,
	}

	tests := []struct {
		name       string
		enrollment string
		mockSetup  func()
		expectErr  bool
		result     *domain.Account
	}{
		{
			name:       "Existing enrollment returns account",
			enrollment: "AZ1001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByEnrollment)).
					WithArgs("AZ1001").
					WillReturnRows(accountRows(account))
			},
			result: account,
		},
		{
			name:       "Unknown enrollment returns nil",
			enrollment: "AZ9999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByEnrollment)).
					WithArgs("AZ9999").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "Database error",
			enrollment: "AZ1001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByEnrollment)).
					WithArgs("AZ1001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByEnrollment(context.Background(), tt.enrollment)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	account := &domain.Account{
		ID:         1,
		Enrollment: "AZ1001",
		Balance:    decimal.NewFromInt(500),
	}

	tests := []struct {
		name       string
		enrollment string
		mockSetup  func()
		expectErr  bool
		result     *domain.Account
	}{
		{
			name:       "Locks and returns the account",
			enrollment: "AZ1001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).
					WithArgs("AZ1001").
					WillReturnRows(accountRows(account))
			},
			result: account,
		},
		{
			name:       "Unknown enrollment returns nil",
			enrollment: "AZ9999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).
					WithArgs("AZ9999").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(context.Background(), tt.enrollment)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		accountID int
		balance   decimal.Decimal
		mockSetup func()
		expectErr bool
	}{
		{
			name:      "Successfully updates balance",
			accountID: 1,
			balance:   decimal.NewFromInt(200),
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(queryUpdateBalance)).
					WithArgs(decimal.NewFromInt(200), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "Database error",
			accountID: 1,
			balance:   decimal.NewFromInt(200),
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(queryUpdateBalance)).
					WithArgs(decimal.NewFromInt(200), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalance(context.Background(), tt.accountID, tt.balance)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
