package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the remote spreadsheet stores balances and amounts as plain numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Role string

const (
	RoleOperator      Role = "ADMIN"
	RoleAccountHolder Role = "USER"
)

type Kind string

const (
	KindEarn   Kind = "EARN"
	KindRedeem Kind = "REDEEM"
)

func (k Kind) Valid() bool {
	return k == KindEarn || k == KindRedeem
}

type Account struct {
	ID           string          `json:"id"`
	ContactPhone string          `json:"phoneNumber"`
	DisplayName  string          `json:"name"`
	Role         Role            `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	QRToken      string          `json:"qrData"`
	CreatedAt    time.Time       `json:"createdAt"`
	PasswordHash string          `json:"passwordHash,omitempty"`
}

func (a Account) IsOperator() bool {
	return a.Role == RoleOperator
}

type Transaction struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"userId"`
	GrossAmount   decimal.Decimal `json:"amount"`
	CashbackDelta decimal.Decimal `json:"cashbackAmount"`
	Kind          Kind            `json:"type"`
	OccurredAt    time.Time       `json:"timestamp"`
	OperatorID    string          `json:"adminId"`
}

// SignedDelta is the balance adjustment the transaction stands for.
func (t Transaction) SignedDelta() decimal.Decimal {
	if t.Kind == KindRedeem {
		return t.CashbackDelta.Neg()
	}
	return t.CashbackDelta
}

// ExternalIdentity is what the chat-platform sign-in widget hands over.
type ExternalIdentity struct {
	ExternalID string
	FirstName  string
	LastName   string
}

func (e ExternalIdentity) DisplayName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type Collection string

const (
	CollectionAccounts     Collection = "accounts"
	CollectionTransactions Collection = "transactions"
)

type CacheEntry struct {
	Collection Collection `db:"collection"`
	Payload    []byte     `db:"payload"`
	FetchedAt  time.Time  `db:"fetched_at"`
}
