package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FaizAhmad0/intWallet/internal/domain"
)

// TransactionRecorded is emitted after a ledger entry has been
// committed. Consumers (reporting, reconciliation) treat it as a
// notification; the ledger row is the source of truth.
type TransactionRecorded struct {
	TransactionID     string          `json:"transaction_id"`
	AccountID         int             `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	Credit            bool            `json:"credit"`
	Description       string          `json:"description"`
	ExternalPaymentID string          `json:"external_payment_id,omitempty"`
	RecordedAt        time.Time       `json:"recorded_at"`
}

func FromTransaction(tx *domain.Transaction) TransactionRecorded {
	return TransactionRecorded{
		TransactionID:     tx.ID,
		AccountID:         tx.AccountID,
		Amount:            tx.Amount,
		Credit:            tx.Credit,
		Description:       tx.Description,
		ExternalPaymentID: tx.ExternalPaymentID,
		RecordedAt:        tx.CreatedAt,
	}
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event TransactionRecorded) error {
	return nil
}
