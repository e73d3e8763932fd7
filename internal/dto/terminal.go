package dto

import (
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type KindRequestDTO struct {
	Kind string `json:"kind" validate:"required,oneof=EARN REDEEM" example:"EARN"`
}

type ScanRequestDTO struct {
	Payload string `json:"payload" validate:"required" example:"cb_3f2a9c0d1e7b4a5f8c6d2e1f0a9b8c7d"`
}

type SelectRequestDTO struct {
	AccountID string `json:"accountId" validate:"required" example:"p_998901234567"`
}

type AmountRequestDTO struct {
	Amount string `json:"amount" validate:"required,amount" example:"10.000"`
}

type TransactionDTO struct {
	ID            string          `json:"id" example:"6b1f3c1e-8f0a-4a57-9d0b-2f1f4f7c9e11"`
	AccountID     string          `json:"userId" example:"p_998901234567"`
	CustomerName  string          `json:"customerName,omitempty" example:"Ali Valiev"`
	GrossAmount   decimal.Decimal `json:"amount" swaggertype:"number" example:"2000"`
	CashbackDelta decimal.Decimal `json:"cashbackAmount" swaggertype:"number" example:"20"`
	Kind          domain.Kind     `json:"type" example:"EARN"`
	OccurredAt    time.Time       `json:"timestamp" example:"2024-05-01T10:00:00Z"`
	OperatorID    string          `json:"adminId,omitempty" example:"admin_admin"`
}

type PreviewDTO struct {
	Kind             domain.Kind     `json:"kind" example:"EARN"`
	GrossAmount      decimal.Decimal `json:"grossAmount" swaggertype:"number" example:"2000"`
	CashbackDelta    decimal.Decimal `json:"cashbackDelta" swaggertype:"number" example:"20"`
	CurrentBalance   decimal.Decimal `json:"currentBalance" swaggertype:"number" example:"1000"`
	PredictedBalance decimal.Decimal `json:"predictedBalance" swaggertype:"number" example:"1020"`
	CanSubmit        bool            `json:"canSubmit" example:"true"`
	Reason           string          `json:"reason,omitempty" example:"amount: exceeds available balance"`
}

type OperatorStatsDTO struct {
	Members int              `json:"members" example:"42"`
	Volume  decimal.Decimal  `json:"volume" swaggertype:"number" example:"1250000"`
	Recent  []TransactionDTO `json:"recent"`
}

type TerminalStateDTO struct {
	State        string            `json:"state" example:"AMOUNT_ENTRY"`
	Kind         domain.Kind       `json:"kind,omitempty" example:"EARN"`
	Selected     *AccountDTO       `json:"selected,omitempty"`
	Amount       decimal.Decimal   `json:"amount" swaggertype:"number" example:"2000"`
	Preview      *PreviewDTO       `json:"preview,omitempty"`
	Accounts     []AccountDTO      `json:"accounts"`
	Transactions []TransactionDTO  `json:"transactions"`
	LastOutcome  string            `json:"lastOutcome,omitempty" example:"COMMITTED"`
	LastError    string            `json:"lastError,omitempty"`
	Stats        *OperatorStatsDTO `json:"stats,omitempty"`
}

type UnknownIdentityDTO struct {
	Message string   `json:"message" example:"unknown identity"`
	Scanned string   `json:"scanned" example:"zzz"`
	Known   []string `json:"known" example:"cb_abc,cb_def"`
}

func TransactionFromDomain(t domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            t.ID,
		AccountID:     t.AccountID,
		GrossAmount:   t.GrossAmount,
		CashbackDelta: t.CashbackDelta,
		Kind:          t.Kind,
		OccurredAt:    t.OccurredAt,
		OperatorID:    t.OperatorID,
	}
}

func TransactionsFromDomain(txs []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, TransactionFromDomain(t))
	}
	return out
}
