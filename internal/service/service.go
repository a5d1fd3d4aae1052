package service

import (
	"github.com/FaizAhmad0/intWallet/internal/pg"
	"github.com/FaizAhmad0/intWallet/internal/repo"
	"github.com/FaizAhmad0/intWallet/internal/service/billingservice"
	"github.com/FaizAhmad0/intWallet/internal/service/orderservice"
	"github.com/FaizAhmad0/intWallet/internal/service/pricingservice"
	"github.com/FaizAhmad0/intWallet/internal/service/walletservice"
)

type Services struct {
	PricingService *pricingservice.Service
	OrderService   *orderservice.Service
	BillingService *billingservice.Service
	WalletService  *walletservice.Service
}

// Publisher is satisfied by the kafka publisher and the no-op
// fallback; the same instance feeds both ledger-mutating services.
type Publisher interface {
	billingservice.Publisher
}

func New(repo *repo.Repositories, txManager pg.TXManager, publisher Publisher) *Services {
	pricingService := pricingservice.New()
	orderService := orderservice.New(repo.Orders, repo.Accounts, pricingService)
	billingService := billingservice.New(repo.Accounts, repo.Orders, repo.Transactions, repo.Products, pricingService, txManager, publisher)
	walletService := walletservice.New(repo.Accounts, repo.Transactions, txManager, publisher)

	return &Services{
		PricingService: pricingService,
		OrderService:   orderService,
		BillingService: billingService,
		WalletService:  walletService,
	}
}
