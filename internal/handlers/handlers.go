package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/FaizAhmad0/intWallet/docs"
	adminhandlers "github.com/FaizAhmad0/intWallet/internal/handlers/admin"
	ordershandlers "github.com/FaizAhmad0/intWallet/internal/handlers/orders"
	wallethandlers "github.com/FaizAhmad0/intWallet/internal/handlers/wallet"
	"github.com/FaizAhmad0/intWallet/internal/payment"
	"github.com/FaizAhmad0/intWallet/internal/service"
	"github.com/FaizAhmad0/intWallet/internal/shipping"
	"github.com/FaizAhmad0/intWallet/pkg/auth"
)

type OrderHandler interface {
	AddSKU(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Unarchive(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Unship(w http.ResponseWriter, r *http.Request)
	ReturnAdjust(w http.ResponseWriter, r *http.Request)
	MarkAvailable(w http.ResponseWriter, r *http.Request)
	MarkUnavailable(w http.ResponseWriter, r *http.Request)
	AssignAWB(w http.ResponseWriter, r *http.Request)
	SchedulePickup(w http.ResponseWriter, r *http.Request)
	GenerateLabel(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	CreateEasyShip(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	AddBalance(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AddMoney(w http.ResponseWriter, r *http.Request)
	DeductMoney(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler  OrderHandler
	WalletHandler WalletHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services, shippingService *shipping.Service, gateway payment.GatewayI) *Handlers {
	return &Handlers{
		OrderHandler:  ordershandlers.New(s.OrderService, s.BillingService, shippingService),
		WalletHandler: wallethandlers.New(s.WalletService, gateway),
		AdminHandler:  adminhandlers.New(s.WalletService, s.OrderService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.OrderHandler.List)
			r.Get("/search", h.OrderHandler.Search)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleManager))
				r.Post("/add-sku", h.OrderHandler.AddSKU)
				r.Put("/archive", h.OrderHandler.Archive)
				r.Post("/unarchive", h.OrderHandler.Unarchive)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleManager, auth.RoleUser))
				r.Post("/pay", h.OrderHandler.Pay)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleDispatch))
				r.Patch("/{orderID}/status", h.OrderHandler.UpdateStatus)
				r.Post("/mark-available", h.OrderHandler.MarkAvailable)
				r.Post("/mark-unavailable", h.OrderHandler.MarkUnavailable)
				r.Post("/assign-awb", h.OrderHandler.AssignAWB)
				r.Post("/schedule-pickup", h.OrderHandler.SchedulePickup)
				r.Post("/generate-label", h.OrderHandler.GenerateLabel)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleAccountant))
				r.Post("/return-adjust", h.OrderHandler.ReturnAdjust)
			})
			r.With(auth.RequireRole(auth.RoleAdmin)).Post("/unship", h.OrderHandler.Unship)
		})

		r.Route("/easyshiporders", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleManager))
			r.Post("/", h.OrderHandler.CreateEasyShip)
			r.Put("/archive", h.OrderHandler.Archive)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleUser))
			r.Post("/add-balance", h.WalletHandler.AddBalance)
			r.Post("/verify-payment", h.WalletHandler.VerifyPayment)
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleAccountant))
				r.Post("/add-money", h.AdminHandler.AddMoney)
				r.Post("/deduct-money", h.AdminHandler.DeductMoney)
				r.Get("/transactions", h.AdminHandler.ListTransactions)
			})
			r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/orders/{orderID}", h.AdminHandler.DeleteOrder)
		})
	})

	return r
}
