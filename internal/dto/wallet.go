package dto

import "time"

type AddBalanceRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"500"`
}

type AddBalanceResponseDTO struct {
	PaymentRequestID string `json:"paymentRequestId" example:"d66cb29dd059482e8072999f995c4eef"`
	PaymentURL       string `json:"paymentUrl" example:"https://test.instamojo.com/@merchant/d66cb29d"`
}

type VerifyPaymentRequestDTO struct {
	PaymentRequestID string `json:"paymentRequestId" validate:"required"`
	PaymentID        string `json:"paymentId" validate:"required" example:"MOJO5a06005J21512197"`
}

type VerifyPaymentResponseDTO struct {
	Applied bool    `json:"applied" example:"true"`
	Amount  float64 `json:"amount" example:"500"`
	Balance float64 `json:"balance" example:"1200.50"`
}

type BalanceResponseDTO struct {
	Enrollment string  `json:"enrollment" example:"VC10234"`
	Balance    float64 `json:"balance" example:"1200.50"`
}

type TransactionResponseDTO struct {
	ID          string    `json:"id" example:"7f9c24e5-2f3a-4b1d-9c0a-6de1f1b2a34b"`
	Enrollment  string    `json:"enrollment,omitempty" example:"VC10234"`
	Amount      float64   `json:"amount" example:"300"`
	Credit      bool      `json:"credit" example:"false"`
	Debit       bool      `json:"debit" example:"true"`
	Description string    `json:"description" example:"Deduct while purchasing product"`
	CreatedAt   time.Time `json:"createdAt"`
}
