package dto

type AdjustBalanceRequestDTO struct {
	Enrollment  string  `json:"enrollment" validate:"required" example:"VC10234"`
	Amount      float64 `json:"amount" validate:"required,gt=0" example:"250"`
	Description string  `json:"description" validate:"required" example:"Manual correction"`
}

type TransactionListResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Total        int                      `json:"total" example:"512"`
	Page         int                      `json:"page" example:"1"`
	Limit        int                      `json:"limit" example:"20"`
}
