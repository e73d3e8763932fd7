package dto

import "github.com/shopspring/decimal"

type VisibilityRequestDTO struct {
	Visible *bool `json:"visible" validate:"required" example:"true"`
}

type HolderDashboardDTO struct {
	Account      *AccountDTO      `json:"account"`
	Tier         string           `json:"tier" example:"Silver"`
	TotalEarned  decimal.Decimal  `json:"totalEarned" swaggertype:"number" example:"35"`
	Transactions []TransactionDTO `json:"transactions"`
}

// HolderEventDTO is pushed over the holder stream.
type HolderEventDTO struct {
	Type         string           `json:"type" example:"refresh"`
	Account      *AccountDTO      `json:"account"`
	Transactions []TransactionDTO `json:"transactions,omitempty"`
}
