package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/FaizAhmad0/intWallet/internal/domain"
	"github.com/FaizAhmad0/intWallet/internal/events"
	"github.com/FaizAhmad0/intWallet/internal/pg"
)

type AccountRepo interface {
	GetByEnrollment(ctx context.Context, enrollment string) (*domain.Account, error)
	GetForUpdate(ctx context.Context, enrollment string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	FindByExternalPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error)
	FindAll(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error)
}

type Publisher interface {
	Publish(ctx context.Context, event events.TransactionRecorded) error
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// Service owns every balance mutation that is not tied to an order
// status change: gateway credits and administrative adjustments.
type Service struct {
	accountRepo AccountRepo
	txRepo      TransactionRepo
	txManager   pg.TXManager
	publisher   Publisher
}

func New(accountRepo AccountRepo, txRepo TransactionRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

func (s *Service) GetBalance(ctx context.Context, enrollment string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByEnrollment(ctx, enrollment)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetTransactions(ctx context.Context, enrollment string) ([]domain.Transaction, error) {
	account, err := s.GetBalance(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.FindByAccountID(ctx, account.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) ListTransactions(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	transactions, total, err := s.txRepo.FindAll(ctx, from, to, limit, offset)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}

// Credit applies an externally verified payment to the account. It is
// idempotent on externalPaymentID: a repeated call reports applied=false
// and mutates nothing.
func (s *Service) Credit(ctx context.Context, enrollment string, amount decimal.Decimal, externalPaymentID, description string) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrInvalidAmount
	}

	existing, err := s.txRepo.FindByExternalPaymentID(ctx, externalPaymentID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		zap.L().Info("payment already applied", zap.String("paymentID", externalPaymentID))
		return false, nil
	}

	var recorded *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, enrollment)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		// Re-check under the lock; two concurrent verifications of the
		// same payment must credit exactly once.
		existing, err := s.txRepo.FindByExternalPaymentID(ctx, externalPaymentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		tx := &domain.Transaction{
			ID:                uuid.NewString(),
			AccountID:         account.ID,
			Amount:            amount,
			Credit:            true,
			Description:       description,
			ExternalPaymentID: externalPaymentID,
			CreatedAt:         time.Now(),
		}
		if err := s.txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalance(ctx, account.ID, account.Balance.Add(amount)); err != nil {
			return err
		}
		recorded = tx
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit account", zap.Error(err))
		return false, err
	}
	if recorded == nil {
		return false, nil
	}

	s.publish(ctx, recorded)
	return true, nil
}

// ManualAdjust is an administrative credit or debit with no idempotency
// key. A debit that would drive the balance negative is rejected.
func (s *Service) ManualAdjust(ctx context.Context, enrollment string, amount decimal.Decimal, credit bool, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	var recorded *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, enrollment)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		balance := account.Balance
		if credit {
			balance = balance.Add(amount)
		} else {
			if account.Balance.LessThan(amount) {
				return ErrInsufficientBalance
			}
			balance = balance.Sub(amount)
		}

		tx := &domain.Transaction{
			ID:          uuid.NewString(),
			AccountID:   account.ID,
			Amount:      amount,
			Credit:      credit,
			Debit:       !credit,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := s.txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalance(ctx, account.ID, balance); err != nil {
			return err
		}
		recorded = tx
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrAccountNotFound) {
			zap.L().Error("failed to adjust balance", zap.Error(err))
		}
		return err
	}

	s.publish(ctx, recorded)
	return nil
}

func (s *Service) publish(ctx context.Context, tx *domain.Transaction) {
	if err := s.publisher.Publish(ctx, events.FromTransaction(tx)); err != nil {
		zap.L().Warn("failed to publish transaction event", zap.Error(err), zap.String("transactionID", tx.ID))
	}
}
