package repo

import (
	"github.com/FaizAhmad0/intWallet/internal/pg"
	accountrepo "github.com/FaizAhmad0/intWallet/internal/repo/account-repo"
	orderrepo "github.com/FaizAhmad0/intWallet/internal/repo/order-repo"
	productrepo "github.com/FaizAhmad0/intWallet/internal/repo/product-repo"
	transactionrepo "github.com/FaizAhmad0/intWallet/internal/repo/transaction-repo"
)

type Repositories struct {
	Accounts     *accountrepo.Repository
	Orders       *orderrepo.Repository
	Transactions *transactionrepo.Repository
	Products     *productrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Accounts:     accountrepo.New(conn, txManager),
		Orders:       orderrepo.New(conn, txManager),
		Transactions: transactionrepo.New(conn),
		Products:     productrepo.New(conn),
	}
}
