package dto

import (
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type TelegramSignInRequestDTO struct {
	InitData string `json:"init_data" validate:"required" example:"query_id=AAH...&user=%7B%22id%22%3A42%7D&auth_date=1714557600&hash=c501b71e"`
}

type RegisterRequestDTO struct {
	Phone    string `json:"phone" validate:"required,phone" example:"+998 90 123 45 67"`
	Name     string `json:"name" validate:"required,max=100" example:"Ali Valiev"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" validate:"required,phone" example:"+998 90 123 45 67"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

type OperatorLoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"admin123"`
}

type AccountDTO struct {
	ID        string          `json:"id" example:"p_998901234567"`
	Phone     string          `json:"phone,omitempty" example:"+998 90 123 45 67"`
	Name      string          `json:"name" example:"Ali Valiev"`
	Role      domain.Role     `json:"role" example:"USER"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"number" example:"1020"`
	QRToken   string          `json:"qrData" example:"cb_3f2a9c0d1e7b4a5f8c6d2e1f0a9b8c7d"`
	CreatedAt time.Time       `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type SessionResponseDTO struct {
	Account *AccountDTO `json:"account"`
	Token   string      `json:"token,omitempty"`
}

func AccountFromDomain(a *domain.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID,
		Phone:     a.ContactPhone,
		Name:      a.DisplayName,
		Role:      a.Role,
		Balance:   a.Balance,
		QRToken:   a.QRToken,
		CreatedAt: a.CreatedAt,
	}
}
